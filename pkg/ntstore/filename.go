package ntstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var runFilePattern = regexp.MustCompile(`^(.+)_(\d+)\.arrow$`)

// NextRunPath finds the next unused run-indexed filename in dir, following
// the base_index.arrow naming convention (e.g. solutions_1.arrow,
// solutions_2.arrow, ...), grounded directly on
// original_source/utils.py's get_next_filename.
func NextRunPath(dir, base string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	maxIndex := 0
	for _, entry := range entries {
		match := runFilePattern.FindStringSubmatch(entry.Name())
		if match == nil || match[1] != base {
			continue
		}
		index, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if index > maxIndex {
			maxIndex = index
		}
	}

	name := fmt.Sprintf("%s_%d.arrow", base, maxIndex+1)
	return filepath.Join(dir, name), nil
}

// LatestRunPath finds the highest-indexed base_N.arrow file in dir, for the
// postprocessor's "run over the latest enumeration output" CLI behaviour
// (§6).
func LatestRunPath(dir, base string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	maxIndex := -1
	var latest string
	for _, entry := range entries {
		match := runFilePattern.FindStringSubmatch(entry.Name())
		if match == nil || match[1] != base {
			continue
		}
		index, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		if index > maxIndex {
			maxIndex = index
			latest = entry.Name()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("no %s_*.arrow file found in %s", base, dir)
	}
	return filepath.Join(dir, latest), nil
}
