package score

import "github.com/ntpanic/solver/pkg/ntmodel"

// dominanceDir captures the sense a stat's Pareto comparison runs in:
// "max" cards want a weak/strict >= / > comparison, "min" cards the
// reverse, mirroring original_source/verify_winner_trio.py's
// find_undefeated_trios_sql CASE expression per stat type.
type dominanceDir struct {
	key string
	max bool
}

func dominanceDirsFor(cards []ntmodel.Card) []dominanceDir {
	dirs := make([]dominanceDir, len(cards))
	for i, c := range cards {
		dirs[i] = dominanceDir{key: c.Key, max: c.Type == ntmodel.CardTypeMax}
	}
	return dirs
}

// dominates reports whether a weakly dominates b on every dimension and
// strictly dominates on at least one, using each dimension's raw stat
// value (not its percentile score), matching the original's direct
// column comparison.
func dominates(a, b Row, dirs []dominanceDir) bool {
	strict := false
	for _, d := range dirs {
		av, bv := a.StatValues[d.key], b.StatValues[d.key]
		if d.max {
			if av < bv {
				return false
			}
			if av > bv {
				strict = true
			}
		} else {
			if av > bv {
				return false
			}
			if av < bv {
				strict = true
			}
		}
	}
	return strict
}

// ParetoFrontier returns the subset of rows not dominated by any other row
// across the given cards' raw statistics, deduplicated to one row per
// distinct tuple of stat values first (mirroring the original's
// `WITH distinct_trios AS (SELECT DISTINCT ...)` step, which collapses
// layouts that differ only by symmetry before the O(n^2) comparison).
func ParetoFrontier(rows []Row, cards ntmodel.CardCatalog) []Row {
	scorable := cards.Scorable()
	dirs := dominanceDirsFor(scorable)

	distinct := dedupeByStatTuple(rows, scorable)

	var frontier []Row
	for i, candidate := range distinct {
		beaten := false
		for j, other := range distinct {
			if i == j {
				continue
			}
			if dominates(other, candidate, dirs) {
				beaten = true
				break
			}
		}
		if !beaten {
			frontier = append(frontier, candidate)
		}
	}
	return frontier
}

// dedupeByStatTuple keeps the first row seen for each distinct combination
// of the scorable cards' raw stat values.
func dedupeByStatTuple(rows []Row, scorable []ntmodel.Card) []Row {
	seen := make(map[string]bool, len(rows))
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		key := statTupleKey(row, scorable)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}
	return out
}

func statTupleKey(row Row, scorable []ntmodel.Card) string {
	buf := make([]byte, 0, len(scorable)*4)
	for _, c := range scorable {
		buf = append(buf, byte(row.StatValues[c.Key]), '|')
	}
	return string(buf)
}
