package analyzer

import (
	"testing"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

// fullBoard places piece i, side 0, orientation 0 at every cell.
func fullBoard() ntmodel.Board {
	var b ntmodel.Board
	for i := range b {
		b[i] = &ntmodel.OrientedTile{Piece: i, Side: 0, Orientation: 0}
	}
	return b
}

func TestAddSimpleAggregatesSumsAcrossAllNineTiles(t *testing.T) {
	catalog := make(ntmodel.TileCatalog, ntmodel.NumPieces)
	for i := range catalog {
		catalog[i][0].Houses = 1
		catalog[i][0].Aliens = 2
	}
	board := fullBoard()

	var stats Stats
	addSimpleAggregates(&stats, board, catalog)

	if stats.TotalHouses != ntmodel.NumPieces {
		t.Fatalf("TotalHouses = %d, want %d", stats.TotalHouses, ntmodel.NumPieces)
	}
	if stats.TotalAliens != 2*ntmodel.NumPieces {
		t.Fatalf("TotalAliens = %d, want %d", stats.TotalAliens, 2*ntmodel.NumPieces)
	}
	if stats.TotalTilesWithoutRoads != ntmodel.NumPieces {
		t.Fatalf("TotalTilesWithoutRoads = %d, want %d (no tile carries any road)", stats.TotalTilesWithoutRoads, ntmodel.NumPieces)
	}
}

func TestAddSimpleAggregatesCountsOnlyTilesMissingRoads(t *testing.T) {
	catalog := make(ntmodel.TileCatalog, ntmodel.NumPieces)
	catalog[0][0].Roads = []ntmodel.Road{{Connection: [2]int{ntmodel.EdgeW, ntmodel.EdgeE}}}
	board := fullBoard()

	var stats Stats
	addSimpleAggregates(&stats, board, catalog)

	if stats.TotalTilesWithoutRoads != ntmodel.NumPieces-1 {
		t.Fatalf("TotalTilesWithoutRoads = %d, want %d", stats.TotalTilesWithoutRoads, ntmodel.NumPieces-1)
	}
}
