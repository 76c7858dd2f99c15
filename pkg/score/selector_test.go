package score

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

func TestCanonicalKeySortsRegardlessOfInputOrder(t *testing.T) {
	got := CanonicalKey([]int{7, 3, 12})
	if got != "3_7_12" {
		t.Fatalf("CanonicalKey({7,3,12}) = %q, want %q", got, "3_7_12")
	}
}

func TestCanonicalKeySingleCard(t *testing.T) {
	if got := CanonicalKey([]int{5}); got != "5" {
		t.Fatalf("CanonicalKey({5}) = %q, want %q", got, "5")
	}
}

func row(id string, scores map[int]float64, super float64) Row {
	return Row{RowID: id, CardScores: scores, SuperScore: super}
}

func TestSelectBestPicksHighestComboScore(t *testing.T) {
	rows := []Row{
		row("low", map[int]float64{1: 20, 2: 20}, 20),
		row("high", map[int]float64{1: 90, 2: 90}, 90),
	}
	w, ok := selectBest(rows, []int{1, 2})
	if !ok {
		t.Fatalf("selectBest: no winner found")
	}
	if w.Row.RowID != "high" {
		t.Fatalf("winner = %q, want %q", w.Row.RowID, "high")
	}
}

func TestSelectBestTieBreaksByMinimumCardScore(t *testing.T) {
	// Both rows have the same geometric mean: {30, 120} vs {60, 60}, both
	// with product 3600, and geometricMean returns the identical float64
	// for each.
	rows := []Row{
		row("uneven", map[int]float64{1: 30, 2: 120}, 0),
		row("even", map[int]float64{1: 60, 2: 60}, 0),
	}
	w, ok := selectBest(rows, []int{1, 2})
	if !ok {
		t.Fatalf("selectBest: no winner found")
	}
	if w.Row.RowID != "even" {
		t.Fatalf("winner = %q, want %q (higher minimum per-card score)", w.Row.RowID, "even")
	}
}

func TestSelectBestTieBreaksBySuperScoreLast(t *testing.T) {
	rows := []Row{
		row("lowsuper", map[int]float64{1: 60, 2: 60}, 10),
		row("highsuper", map[int]float64{1: 60, 2: 60}, 99),
	}
	w, ok := selectBest(rows, []int{1, 2})
	if !ok {
		t.Fatalf("selectBest: no winner found")
	}
	if w.Row.RowID != "highsuper" {
		t.Fatalf("winner = %q, want %q (higher super_score)", w.Row.RowID, "highsuper")
	}
}

func TestBestByCombinationCoversSinglesPairsTriplesAndAll(t *testing.T) {
	cards := ntmodel.CardCatalog{
		{Number: 1, Key: "a", Type: ntmodel.CardTypeMax},
		{Number: 2, Key: "b", Type: ntmodel.CardTypeMax},
		{Number: 3, Key: "c", Type: ntmodel.CardTypeMax},
	}
	rows := []Row{
		row("only", map[int]float64{1: 50, 2: 60, 3: 70}, 60),
	}

	best := BestByCombination(rows, cards)

	wantKeys := []string{"1", "2", "3", "1_2", "1_3", "2_3", "1_2_3"}
	for _, k := range wantKeys {
		if _, ok := best[k]; !ok {
			t.Fatalf("BestByCombination: missing key %q", k)
		}
	}
	if len(best) != len(wantKeys) {
		t.Fatalf("len(best) = %d, want %d", len(best), len(wantKeys))
	}
}

func TestBestByCombinationSkipsNonScorableCards(t *testing.T) {
	cards := ntmodel.CardCatalog{
		{Number: 1, Key: "a", Type: ntmodel.CardTypeMax},
		{Number: 2, Name: "Decorative"},
	}
	rows := []Row{row("only", map[int]float64{1: 50}, 50)}

	best := BestByCombination(rows, cards)
	if _, ok := best["1_2"]; ok {
		t.Fatalf("BestByCombination: combination key %q should not exist (card 2 not scorable)", "1_2")
	}
	if _, ok := best["1"]; !ok {
		t.Fatalf("BestByCombination: missing key %q", "1")
	}
}

// TestBestByCombinationDeterministicProperty checks §8 invariant 6: running
// the selector twice over identical rows and cards must produce identical
// winners for every combination key.
func TestBestByCombinationDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numCards := rapid.IntRange(1, 4).Draw(t, "numCards")
		cards := make(ntmodel.CardCatalog, numCards)
		for i := range cards {
			dir := ntmodel.CardTypeMax
			if rapid.Bool().Draw(t, "minDirection") {
				dir = ntmodel.CardTypeMin
			}
			cards[i] = ntmodel.Card{Number: i + 1, Key: fmt.Sprintf("k%d", i), Type: dir}
		}

		numRows := rapid.IntRange(1, 8).Draw(t, "numRows")
		rows := make([]Row, numRows)
		for r := range rows {
			scores := make(map[int]float64, numCards)
			for _, c := range cards {
				scores[c.Number] = float64(rapid.IntRange(0, 100).Draw(t, "cardScore"))
			}
			rows[r] = row(fmt.Sprintf("row%d", r), scores, float64(rapid.IntRange(0, 100).Draw(t, "super")))
		}

		first := BestByCombination(rows, cards)
		second := BestByCombination(rows, cards)

		if len(first) != len(second) {
			t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
		}
		for key, w1 := range first {
			w2, ok := second[key]
			if !ok {
				t.Fatalf("key %q present on first run but missing on second", key)
			}
			if w1.Row.RowID != w2.Row.RowID || w1.ComboScore != w2.ComboScore {
				t.Fatalf("key %q: first=%+v second=%+v", key, w1, w2)
			}
		}
	})
}
