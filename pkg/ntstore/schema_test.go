package ntstore

import (
	"testing"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

func TestSchemaHasExpectedColumnCount(t *testing.T) {
	schema := Schema()
	want := 1 + ntmodel.NumCells*3 + len(statColumns())
	if schema.NumFields() != want {
		t.Fatalf("NumFields() = %d, want %d", schema.NumFields(), want)
	}
}

func TestSchemaFieldOrderMatchesRowEncodingOrder(t *testing.T) {
	schema := Schema()
	if schema.Field(0).Name != RowIDColumn {
		t.Fatalf("field 0 = %q, want %q", schema.Field(0).Name, RowIDColumn)
	}

	layout := layoutColumns()
	for i, name := range layout {
		got := schema.Field(1 + i).Name
		if got != name {
			t.Fatalf("field %d = %q, want %q", 1+i, got, name)
		}
	}

	stats := statColumns()
	offset := 1 + len(layout)
	for i, name := range stats {
		got := schema.Field(offset + i).Name
		if got != name {
			t.Fatalf("field %d = %q, want %q", offset+i, got, name)
		}
	}
}

func TestLayoutColumnsNameEveryCellOnce(t *testing.T) {
	cols := layoutColumns()
	if len(cols) != ntmodel.NumCells*3 {
		t.Fatalf("len(layoutColumns()) = %d, want %d", len(cols), ntmodel.NumCells*3)
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if seen[c] {
			t.Fatalf("duplicate layout column %q", c)
		}
		seen[c] = true
	}
}
