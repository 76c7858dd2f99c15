package ntmodel

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

// blankTileJSON renders a catalogue of n road-free, item-free tiles, valid
// for every structural check Validate performs.
func blankTileJSON(n int) []byte {
	catalog := make([]Tile, n)
	data, err := json.Marshal(catalog)
	if err != nil {
		panic(err)
	}
	return data
}

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalogue.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadTileCatalogAcceptsAValidCatalogue(t *testing.T) {
	path := writeTempFile(t, blankTileJSON(NumPieces))

	catalog, err := LoadTileCatalog(path)
	if err != nil {
		t.Fatalf("LoadTileCatalog: %v", err)
	}
	if len(catalog) != NumPieces {
		t.Fatalf("len(catalog) = %d, want %d", len(catalog), NumPieces)
	}
}

func TestLoadTileCatalogRejectsMalformedJSON(t *testing.T) {
	path := writeTempFile(t, []byte("{not valid json"))

	_, err := LoadTileCatalog(path)
	var catErr *ntkerrors.CatalogueError
	if !errors.As(err, &catErr) {
		t.Fatalf("LoadTileCatalog error = %v, want *CatalogueError", err)
	}
}

func TestLoadTileCatalogRejectsWrongPieceCount(t *testing.T) {
	path := writeTempFile(t, blankTileJSON(NumPieces-1))

	_, err := LoadTileCatalog(path)
	var catErr *ntkerrors.CatalogueError
	if !errors.As(err, &catErr) {
		t.Fatalf("LoadTileCatalog error = %v, want *CatalogueError", err)
	}
}

func TestLoadTileCatalogRejectsMissingFile(t *testing.T) {
	_, err := LoadTileCatalog(filepath.Join(t.TempDir(), "missing.json"))
	var ioErr *ntkerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("LoadTileCatalog error = %v, want *IOError", err)
	}
}

func TestValidateRejectsOutOfRangeConnectionIndex(t *testing.T) {
	catalog := make(TileCatalog, NumPieces)
	catalog[2][1].Roads = []Road{{Connection: [2]int{EdgeW, 7}}}

	err := catalog.Validate()
	var topoErr *ntkerrors.TopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("Validate error = %v, want *TopologyError", err)
	}
	if topoErr.Piece != 2 || topoErr.Side != 1 {
		t.Fatalf("TopologyError piece/side = %d/%d, want 2/1", topoErr.Piece, topoErr.Side)
	}
}

func TestValidateRejectsOutOfRangeDirectionIndex(t *testing.T) {
	badDirection := -3
	catalog := make(TileCatalog, NumPieces)
	catalog[0][0].Roads = []Road{{Connection: [2]int{EdgeW, EdgeE}, Direction: &badDirection}}

	err := catalog.Validate()
	var topoErr *ntkerrors.TopologyError
	if !errors.As(err, &topoErr) {
		t.Fatalf("Validate error = %v, want *TopologyError", err)
	}
}

func TestValidateAcceptsEveryInRangeConnectionIndex(t *testing.T) {
	catalog := make(TileCatalog, NumPieces)
	for i := EdgeW; i <= EdgeS; i++ {
		catalog[0][0].Roads = append(catalog[0][0].Roads, Road{Connection: [2]int{EdgeW, i}})
	}
	if err := catalog.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestCitizensSumsGirlsAndBoys(t *testing.T) {
	side := TileSide{Girls: 2, Boys: 3}
	if got := side.Citizens(); got != 5 {
		t.Fatalf("Citizens() = %d, want 5", got)
	}
}

func TestSafeReportsNoAliens(t *testing.T) {
	if !(TileSide{}).Safe() {
		t.Fatalf("Safe() = false for a side with zero aliens, want true")
	}
	if (TileSide{Aliens: 1}).Safe() {
		t.Fatalf("Safe() = true for a side with an alien, want false")
	}
}

// FuzzLoadTileCatalog feeds arbitrary bytes through LoadTileCatalog,
// checking that malformed JSON and out-of-range connection/direction
// indices are always reported as a CatalogueError or TopologyError rather
// than panicking or succeeding on corrupt input.
func FuzzLoadTileCatalog(f *testing.F) {
	f.Add(blankTileJSON(NumPieces))
	f.Add([]byte("not json at all"))
	f.Add([]byte("[]"))
	f.Add([]byte("null"))
	f.Add([]byte(`[[{"roads":[{"connection":[0,99]}]},{}]]`))
	f.Add([]byte(`[[{"roads":[{"connection":[0,1],"direction":-5}]},{}]]`))

	f.Fuzz(func(t *testing.T, data []byte) {
		path := writeTempFile(t, data)

		catalog, err := LoadTileCatalog(path)
		if err != nil {
			var catErr *ntkerrors.CatalogueError
			var topoErr *ntkerrors.TopologyError
			if !errors.As(err, &catErr) && !errors.As(err, &topoErr) {
				t.Fatalf("LoadTileCatalog returned an unexpected error kind: %v", err)
			}
			return
		}
		if len(catalog) != NumPieces {
			t.Fatalf("LoadTileCatalog succeeded with %d pieces, want %d", len(catalog), NumPieces)
		}
		if verr := catalog.Validate(); verr != nil {
			t.Fatalf("LoadTileCatalog returned a catalogue that fails its own Validate: %v", verr)
		}
	})
}
