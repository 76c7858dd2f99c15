package percentile

import (
	"sort"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/array"
	"golang.org/x/sync/errgroup"
)

// Entry is one (value, frequency, percent_rank) triple for a statistic
// column (§4.7).
type Entry struct {
	Value       uint8
	Frequency   int
	PercentRank float64
}

// Table maps a statistic column name to its entries, sorted by ascending
// value.
type Table map[string][]Entry

// RowSource is the columnar input the percentile engine scans: any reader
// exposing pkg/ntstore's record-batch iteration (satisfied by
// *ntstore.Reader and *ntstore.MultiReader, kept as an interface here so
// this package never needs to import pkg/ntstore's file-handling concerns).
type RowSource interface {
	Schema() *arrow.Schema
	ForEach(func(arrow.Record) error) error
}

// Compute scans src once to tally every value's frequency per column, then
// derives each column's percentile table. The per-column derivation (pure
// map/slice arithmetic, no further I/O) is fanned out across an
// errgroup.Group, per §5's "trivially parallelisable over columns" note;
// the scan itself stays single-threaded so it performs exactly one pass
// over the Arrow file regardless of column count, matching §4.7's
// "single columnar UNPIVOT pass" option.
func Compute(src RowSource, columns []string) (Table, error) {
	freq, err := scanFrequencies(src, columns)
	if err != nil {
		return nil, err
	}

	results := make([][]Entry, len(columns))
	group := new(errgroup.Group)
	for i, col := range columns {
		i, col := i, col
		group.Go(func() error {
			results[i] = columnPercentiles(freq[col])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	table := make(Table, len(columns))
	for i, col := range columns {
		table[col] = results[i]
	}
	return table, nil
}

func scanFrequencies(src RowSource, columns []string) (map[string]map[uint8]int, error) {
	schema := src.Schema()
	colIndex := make(map[string]int, len(columns))
	for _, name := range columns {
		indices := schema.FieldIndices(name)
		if len(indices) == 0 {
			continue
		}
		colIndex[name] = indices[0]
	}

	freq := make(map[string]map[uint8]int, len(columns))
	for _, name := range columns {
		freq[name] = make(map[uint8]int)
	}

	err := src.ForEach(func(rec arrow.Record) error {
		rows := int(rec.NumRows())
		for _, name := range columns {
			idx, ok := colIndex[name]
			if !ok {
				continue
			}
			col, ok := rec.Column(idx).(*array.Uint8)
			if !ok {
				continue
			}
			counts := freq[name]
			for row := 0; row < rows; row++ {
				counts[col.Value(row)]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return freq, nil
}

// columnPercentiles derives the percent_rank table for one column's value
// frequencies: rank among distinct values ascending, divided by
// (distinct_count - 1), as a percentage, clamped to [0, 100].
func columnPercentiles(freq map[uint8]int) []Entry {
	values := make([]uint8, 0, len(freq))
	for v := range freq {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	entries := make([]Entry, len(values))
	denom := len(values) - 1
	for rank, v := range values {
		percentRank := 0.0
		if denom > 0 {
			percentRank = float64(rank) / float64(denom) * 100.0
		}
		if percentRank < 0 {
			percentRank = 0
		}
		if percentRank > 100 {
			percentRank = 100
		}
		entries[rank] = Entry{Value: v, Frequency: freq[v], PercentRank: percentRank}
	}
	return entries
}

// Lookup returns the percent_rank for value in column's entries, and
// whether value actually occurred in the data.
func (t Table) Lookup(column string, value uint8) (float64, bool) {
	for _, e := range t[column] {
		if e.Value == value {
			return e.PercentRank, true
		}
	}
	return 0, false
}
