package score

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

// CanonicalKey builds the underscore-joined, ascending-sorted key a
// combination of card numbers is indexed under, regardless of the order the
// numbers were supplied in (§6 S6: {7, 3, 12} -> "3_7_12").
func CanonicalKey(cardNumbers []int) string {
	sorted := append([]int(nil), cardNumbers...)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "_")
}

// Winner is the best row for one combination of cards, alongside the
// combination's own geometric-mean score over just that subset (§4.9).
type Winner struct {
	Combination []int
	Row         Row
	ComboScore  float64
}

// BestByCombination evaluates every tiling in rows against every
// combination of 1, 2, 3, and all scorable cards, keeping the best tiling
// per combination (§4.9). The result is keyed by CanonicalKey so lookups
// never depend on iteration order.
func BestByCombination(rows []Row, cards ntmodel.CardCatalog) map[string]Winner {
	scorable := cards.Scorable()
	numbers := make([]int, len(scorable))
	for i, c := range scorable {
		numbers[i] = c.Number
	}

	combos := combinationsUpTo3(numbers)
	if len(numbers) > 0 {
		combos = append(combos, append([]int(nil), numbers...))
	}

	best := make(map[string]Winner, len(combos))
	for _, combo := range combos {
		key := CanonicalKey(combo)
		w, ok := selectBest(rows, combo)
		if !ok {
			continue
		}
		best[key] = w
	}
	return best
}

// selectBest finds the row maximizing the geometric mean of the
// combination's card scores. Ties break first by the minimum per-card
// score within the combination (largest wins), then by super_score
// (§4.9's stated tie-break order).
func selectBest(rows []Row, combo []int) (Winner, bool) {
	var best Winner
	found := false

	for _, row := range rows {
		comboScore := comboGeometricMean(row, combo)
		if !found {
			best = Winner{Combination: combo, Row: row, ComboScore: comboScore}
			found = true
			continue
		}
		if better(row, comboScore, combo, best.Row, best.ComboScore) {
			best = Winner{Combination: combo, Row: row, ComboScore: comboScore}
		}
	}
	return best, found
}

// better reports whether candidate beats incumbent under §4.9's ranking:
// higher combo score wins; on a tie, higher minimum per-card score within
// the combination wins; on a further tie, higher super_score wins.
func better(candidate Row, candidateScore float64, combo []int, incumbent Row, incumbentScore float64) bool {
	if candidateScore != incumbentScore {
		return candidateScore > incumbentScore
	}
	candidateMin := minCardScore(candidate, combo)
	incumbentMin := minCardScore(incumbent, combo)
	if candidateMin != incumbentMin {
		return candidateMin > incumbentMin
	}
	return candidate.SuperScore > incumbent.SuperScore
}

func comboGeometricMean(row Row, combo []int) float64 {
	scores := make([]float64, 0, len(combo))
	for _, n := range combo {
		scores = append(scores, row.CardScores[n])
	}
	return geometricMean(scores)
}

func minCardScore(row Row, combo []int) float64 {
	min := 0.0
	for i, n := range combo {
		s := row.CardScores[n]
		if i == 0 || s < min {
			min = s
		}
	}
	return min
}

// combinationsUpTo3 enumerates every combination of size 1, 2, and 3 drawn
// from numbers, in ascending order within each combination.
func combinationsUpTo3(numbers []int) [][]int {
	var out [][]int
	n := len(numbers)

	for i := 0; i < n; i++ {
		out = append(out, []int{numbers[i]})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, []int{numbers[i], numbers[j]})
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				out = append(out, []int{numbers[i], numbers[j], numbers[k]})
			}
		}
	}
	return out
}
