package ntstore

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

// RunMetadata records the configuration fingerprint that produced a merged
// run file (§4.6, §6). It is stored as a JSON sidecar next to the Arrow
// file itself, so a postprocessor can tell whether the configuration it is
// about to rank still matches the one that produced the latest run.
type RunMetadata struct {
	ConfigHash string `json:"configHash"`
}

// metaPath derives the sidecar path for a run's Arrow file.
func metaPath(arrowPath string) string {
	return arrowPath + ".meta.json"
}

// WriteRunMetadata stamps configHash into outPath's sidecar metadata file.
func WriteRunMetadata(outPath string, configHash []byte) error {
	meta := RunMetadata{ConfigHash: hex.EncodeToString(configHash)}
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	path := metaPath(outPath)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ntkerrors.NewIOError("write", path, err)
	}
	return nil
}

// ReadRunMetadata loads the sidecar metadata for outPath.
func ReadRunMetadata(outPath string) (*RunMetadata, error) {
	path := metaPath(outPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ntkerrors.NewIOError("read", path, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, ntkerrors.NewCatalogueError(path, "malformed run metadata JSON")
	}
	return &meta, nil
}

// Matches reports whether configHash is the same fingerprint that produced
// the run m describes.
func (m *RunMetadata) Matches(configHash []byte) bool {
	return m.ConfigHash == hex.EncodeToString(configHash)
}
