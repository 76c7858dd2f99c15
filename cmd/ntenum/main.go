// Command ntenum runs the tiling enumerator: it partitions the search
// space across a worker pool, lets each worker backtrack independently,
// and merges every worker's columnar output into one run-indexed Arrow
// file (§4.4, §4.6, §6).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ntpanic/solver/pkg/ntconfig"
	"github.com/ntpanic/solver/pkg/ntindex"
	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/ntstore"
	"github.com/ntpanic/solver/pkg/partition"
)

const runBaseName = "solutions"

func main() {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:          "ntenum",
		Short:        "Enumerate every valid Nine Tiles Panic tiling",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnumerate(cmd.Context(), configPath, verbose)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to YAML configuration file (required)")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")
	root.MarkFlagRequired("config")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ntenum: %v\n", err)
		os.Exit(1)
	}
}

func runEnumerate(ctx context.Context, configPath string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := ntconfig.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tiles, err := ntmodel.LoadTileCatalog(cfg.Catalogue.TilePath)
	if err != nil {
		return fmt.Errorf("loading tile catalogue: %w", err)
	}
	index := ntindex.Build(tiles)

	tasks, err := partition.SeedPieceTasks(tiles, index, cfg.Partition.SeedPiece)
	if err != nil {
		return fmt.Errorf("building seed tasks: %w", err)
	}
	if cfg.Partition.TwoPieceSeed {
		tasks = partition.ExpandSecondSeed(tiles, index, tasks)
	}
	log.Info("partitioned search space", "tasks", len(tasks), "workers", cfg.Partition.Workers)

	finalPath, err := ntstore.NextRunPath(cfg.OutputDir, runBaseName)
	if err != nil {
		return fmt.Errorf("reserving run output path: %w", err)
	}
	workDir := finalPath + ".workers"
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("creating worker scratch directory: %w", err)
	}

	workers := cfg.Partition.Workers
	workerPaths := make([]string, workers)
	for i := range workerPaths {
		workerPaths[i] = filepath.Join(workDir, fmt.Sprintf("worker_%d.arrow", i))
	}
	newSink := func(workerIndex int) (partition.Sink, error) {
		w, err := ntstore.NewWriter(workerPaths[workerIndex], tiles, cfg.Store.ChunkRows)
		if err != nil {
			return nil, err
		}
		return w.WithLogger(log, workerIndex), nil
	}

	start := time.Now()
	if err := partition.Run(ctx, tiles, index, tasks, workers, newSink, log); err != nil {
		return fmt.Errorf("enumeration failed: %w", err)
	}
	log.Info("enumeration finished", "elapsed", time.Since(start))

	if err := ntstore.Merge(workerPaths, finalPath); err != nil {
		return fmt.Errorf("merging worker outputs: %w", err)
	}
	if err := ntstore.WriteRunMetadata(finalPath, cfg.Hash()); err != nil {
		return fmt.Errorf("writing run metadata: %w", err)
	}
	if err := os.RemoveAll(workDir); err != nil {
		log.Warn("failed to clean up worker scratch directory", "dir", workDir, "error", err)
	}

	fmt.Printf("wrote %s\n", finalPath)
	return nil
}
