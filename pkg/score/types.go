package score

import "github.com/ntpanic/solver/pkg/ntmodel"

// Row is one tiling's data needed for scoring and selection: its layout,
// the raw statistic values a Pareto comparison needs, and the derived
// per-card scores and super_score.
type Row struct {
	RowID      string
	Layout     [ntmodel.NumCells * 3]uint8
	StatValues map[string]uint8
	CardScores map[int]float64
	SuperScore float64
}
