// Command ntrank runs the postprocessor: it loads the latest enumeration
// output, derives the percentile table, scores every tiling, selects the
// best tiling for every combination of scorable cards, and exports
// best_solutions.json and percentiles.json (§4.7, §4.8, §4.9, §6).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ntpanic/solver/pkg/ntconfig"
	"github.com/ntpanic/solver/pkg/ntexport"
	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/ntstore"
	"github.com/ntpanic/solver/pkg/percentile"
	"github.com/ntpanic/solver/pkg/score"
)

const runBaseName = "solutions"

func main() {
	var configPath string
	var renderSVG bool

	root := &cobra.Command{
		Use:          "ntrank",
		Short:        "Rank the latest enumeration output and export the winning tilings",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd.Context(), configPath, renderSVG)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to YAML configuration file (required)")
	root.Flags().BoolVar(&renderSVG, "render-svg", false, "also render an SVG diagram of the all-cards winning tiling")
	root.MarkFlagRequired("config")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ntrank: %v\n", err)
		os.Exit(1)
	}
}

func runRank(_ context.Context, configPath string, renderSVG bool) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := ntconfig.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cards, err := ntmodel.LoadCardCatalog(cfg.Catalogue.CardPath)
	if err != nil {
		return fmt.Errorf("loading card catalogue: %w", err)
	}

	latestPath, err := ntstore.LatestRunPath(cfg.OutputDir, runBaseName)
	if err != nil {
		return fmt.Errorf("finding latest enumeration output: %w", err)
	}

	if meta, metaErr := ntstore.ReadRunMetadata(latestPath); metaErr != nil {
		log.Debug("no run metadata sidecar found for latest run", "path", latestPath)
	} else if !meta.Matches(cfg.Hash()) {
		log.Warn("latest run was produced by a different configuration; results may be stale", "path", latestPath)
	}

	reader, err := ntstore.OpenReader(latestPath, nil)
	if err != nil {
		return fmt.Errorf("opening %s: %w", latestPath, err)
	}
	defer reader.Close()

	scorable := cards.Scorable()
	columns := make([]string, len(scorable))
	for i, c := range scorable {
		columns[i] = c.Key
	}

	log.Info("computing percentiles", "stage", "percentile.Compute", "columns", len(columns), "source", latestPath)
	table, err := percentile.Compute(reader, columns)
	if err != nil {
		return fmt.Errorf("computing percentiles: %w", err)
	}

	log.Info("scoring tilings", "stage", "score.BuildRows")
	rows, err := score.BuildRows(reader, cards, table)
	if err != nil {
		return fmt.Errorf("scoring tilings: %w", err)
	}

	log.Info("selecting winners per combination", "stage", "score.BestByCombination", "rows", len(rows))
	best := score.BestByCombination(rows, cards)
	log.Info("selection complete", "stage", "score.BestByCombination", "combinations", len(best))

	bestPath := filepath.Join(cfg.OutputDir, "best_solutions.json")
	if err := ntexport.SaveJSON(ntexport.BuildBestSolutions(best), bestPath); err != nil {
		return fmt.Errorf("writing %s: %w", bestPath, err)
	}

	percentilesPath := filepath.Join(cfg.OutputDir, "percentiles.json")
	if err := ntexport.SaveJSON(ntexport.BuildPercentiles(table), percentilesPath); err != nil {
		return fmt.Errorf("writing %s: %w", percentilesPath, err)
	}

	fmt.Printf("wrote %s\n", bestPath)
	fmt.Printf("wrote %s\n", percentilesPath)

	if renderSVG {
		if err := renderAllCardsSVG(cfg, best); err != nil {
			return fmt.Errorf("rendering SVG: %w", err)
		}
	}
	return nil
}

func renderAllCardsSVG(cfg *ntconfig.Config, best map[string]score.Winner) error {
	allKey := allCardsKey(best)
	winner, ok := best[allKey]
	if !ok {
		return fmt.Errorf("no winner found for the all-cards combination %q", allKey)
	}

	tiles, err := ntmodel.LoadTileCatalog(cfg.Catalogue.TilePath)
	if err != nil {
		return fmt.Errorf("loading tile catalogue: %w", err)
	}

	board := ntstore.BoardFromRow(winner.Row.Layout[:])
	opts := ntexport.DefaultSVGOptions()
	opts.Title = "Nine Tiles Panic: best all-cards tiling"

	svgPath := filepath.Join(cfg.OutputDir, "best_tiling.svg")
	if err := ntexport.SaveSVG(board, tiles, svgPath, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgPath)
	return nil
}

// allCardsKey finds the combination key covering the most cards — the
// "all" combination (§4.9) — without needing the card catalogue again.
func allCardsKey(best map[string]score.Winner) string {
	var widest string
	widestLen := -1
	for key, w := range best {
		if n := len(w.Combination); n > widestLen {
			widestLen = n
			widest = key
		}
	}
	return widest
}
