package ntexport

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/ntpanic/solver/internal/ntkerrors"
	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/ntstore"
	"github.com/ntpanic/solver/pkg/percentile"
	"github.com/ntpanic/solver/pkg/score"
)

// CellLayout is the [piece, side, orientation] triple for one board cell;
// arrays marshal as plain JSON arrays, matching §6's
// `{"p00":[piece,side,orient]}` shape.
type CellLayout [3]int

// TilingLayout maps a cell key ("p00".."p22") to its [piece, side,
// orientation] triple.
type TilingLayout map[string]CellLayout

// BestSolutions is best_solutions.json's top-level shape: combination key
// (§6: underscore-joined sorted card ids) to the winning tiling's layout.
type BestSolutions map[string]TilingLayout

// BuildBestSolutions converts a selector result into the exported shape.
func BuildBestSolutions(best map[string]score.Winner) BestSolutions {
	out := make(BestSolutions, len(best))
	for key, w := range best {
		out[key] = layoutOf(w.Row)
	}
	return out
}

func layoutOf(row score.Row) TilingLayout {
	board := ntstore.BoardFromRow(row.Layout[:])
	layout := make(TilingLayout, ntmodel.NumCells)
	for pos, ot := range board {
		r, c := ntmodel.RowCol(pos)
		key := fmt.Sprintf("p%d%d", r, c)
		layout[key] = CellLayout{ot.Piece, ot.Side, ot.Orientation}
	}
	return layout
}

// Percentiles is percentiles.json's top-level shape: stat name to a map of
// stringified stat value to its percent rank (§6).
type Percentiles map[string]map[string]float64

// BuildPercentiles converts a percentile.Table into the exported shape.
func BuildPercentiles(table percentile.Table) Percentiles {
	out := make(Percentiles, len(table))
	for column, entries := range table {
		values := make(map[string]float64, len(entries))
		for _, e := range entries {
			values[strconv.Itoa(int(e.Value))] = e.PercentRank
		}
		out[column] = values
	}
	return out
}

// SaveJSON marshals v with 2-space indentation and writes it to path with
// 0644 permissions.
func SaveJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ntkerrors.NewIOError("marshal", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ntkerrors.NewIOError("write", path, err)
	}
	return nil
}
