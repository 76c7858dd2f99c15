package score

import (
	"math"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"

	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/ntstore"
	"github.com/ntpanic/solver/pkg/percentile"
)

// RowSource is the columnar input scanned to build rows. Kept as the same
// shape as percentile.RowSource so pkg/ntstore's readers satisfy it
// directly.
type RowSource = percentile.RowSource

// BuildRows scans src once, computing every row's card scores and
// super_score against the already-computed percentile table (§4.8).
func BuildRows(src RowSource, cards ntmodel.CardCatalog, table percentile.Table) ([]Row, error) {
	scorable := cards.Scorable()

	schema := src.Schema()
	rowIDIdx := firstFieldIndex(schema, "row_id")
	statIdx := make(map[string]int, len(scorable))
	for _, c := range scorable {
		if idx := firstFieldIndex(schema, c.Key); idx >= 0 {
			statIdx[c.Key] = idx
		}
	}
	layoutIdx := make([]int, ntmodel.NumCells*3)
	for i, name := range ntstore.LayoutColumns() {
		layoutIdx[i] = firstFieldIndex(schema, name)
	}

	var rows []Row
	err := src.ForEach(func(rec arrow.Record) error {
		rowIDCol, _ := rec.Column(rowIDIdx).(*array.String)
		n := int(rec.NumRows())

		for r := 0; r < n; r++ {
			row := Row{
				StatValues: make(map[string]uint8, len(statIdx)),
				CardScores: make(map[int]float64, len(scorable)),
			}
			if rowIDCol != nil {
				row.RowID = rowIDCol.Value(r)
			}
			for i, idx := range layoutIdx {
				row.Layout[i] = rec.Column(idx).(*array.Uint8).Value(r)
			}
			for key, idx := range statIdx {
				row.StatValues[key] = rec.Column(idx).(*array.Uint8).Value(r)
			}

			scores := make([]float64, 0, len(scorable))
			for _, c := range scorable {
				s := cardScore(c, row.StatValues[c.Key], table)
				row.CardScores[c.Number] = s
				scores = append(scores, s)
			}
			row.SuperScore = geometricMean(scores)

			rows = append(rows, row)
		}
		return nil
	})
	return rows, err
}

// cardScore computes base = percentile(card.key, value), then applies the
// card's direction (§4.8).
func cardScore(card ntmodel.Card, value uint8, table percentile.Table) float64 {
	base, _ := table.Lookup(card.Key, value)
	if card.Type == ntmodel.CardTypeMin {
		return 100 - base
	}
	return base
}

// geometricMean computes exp(mean(ln score_i)) when every score is
// strictly positive, else 0 (§4.8, §8's "Score law").
func geometricMean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		if s <= 0 {
			return 0
		}
		sum += math.Log(s)
	}
	return math.Exp(sum / float64(len(scores)))
}

func firstFieldIndex(schema *arrow.Schema, name string) int {
	indices := schema.FieldIndices(name)
	if len(indices) == 0 {
		return -1
	}
	return indices[0]
}
