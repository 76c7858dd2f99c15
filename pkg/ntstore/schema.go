package ntstore

import (
	"fmt"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

// RowIDColumn is the generated row-identity column (§4.6 "uniquely identify
// each row").
const RowIDColumn = "row_id"

// layoutColumns returns the 27 layout column names in p{r}{c}-grouped order:
// piece_rc, side_rc, orient_rc for each of the nine cells, per §6.
func layoutColumns() []string {
	cols := make([]string, 0, ntmodel.NumCells*3)
	for pos := 0; pos < ntmodel.NumCells; pos++ {
		row, col := ntmodel.RowCol(pos)
		cols = append(cols,
			fmt.Sprintf("piece_%d%d", row, col),
			fmt.Sprintf("side_%d%d", row, col),
			fmt.Sprintf("orient_%d%d", row, col),
		)
	}
	return cols
}

// LayoutColumns exposes the layout column names for callers outside the
// package (pkg/score) that need to map a schema field index back to a
// board cell without recomputing the naming scheme themselves.
func LayoutColumns() []string { return layoutColumns() }

// statColumns returns the flattened statistic column names, in the exact
// order statRowValues encodes them (§4.5's field list).
func statColumns() []string {
	return []string{
		"total_houses",
		"total_ufos",
		"total_girls",
		"total_boys",
		"total_dogs",
		"total_hamburgers",
		"total_aliens",
		"total_agents",
		"total_captured_aliens",
		"total_curves",
		"total_tiles_without_roads",
		"total_roads",
		"longest_road_size",
		"max_roads_of_same_length",
		"aliens_caught",
		"food_chain_sets",
		"max_aliens_between_two_agents",
		"max_hamburgers_in_front_of_alien",
		"max_aliens_running_towards_agent",
		"max_agents_on_one_road",
		"max_aliens_on_one_road",
		"largest_dog_group",
		"largest_house_group",
		"largest_citizen_group",
		"largest_safe_zone_size",
		"aliens_times_ufos",
		"aliens_times_hamburgers",
		"citizen_dog_pairs",
	}
}

// StatColumns exposes the statistic column names for callers outside the
// package (pkg/percentile, pkg/score) that need to map a card's key to a
// schema field.
func StatColumns() []string { return statColumns() }

// Schema builds the Arrow schema every writer and reader agrees on: the
// row-identity column, the 27 layout columns, then the statistic columns,
// all narrow unsigned integers except the identity column (§4.6, §6).
func Schema() *arrow.Schema {
	fields := make([]arrow.Field, 0, 1+ntmodel.NumCells*3+len(statColumns()))
	fields = append(fields, arrow.Field{Name: RowIDColumn, Type: arrow.BinaryTypes.String})
	for _, name := range layoutColumns() {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Uint8})
	}
	for _, name := range statColumns() {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Uint8})
	}
	return arrow.NewSchema(fields, nil)
}
