package ntstore

import (
	"github.com/ntpanic/solver/pkg/analyzer"
	"github.com/ntpanic/solver/pkg/ntmodel"
)

// layoutRowValues flattens a board's oriented tiles into the 27 layout
// values, in the same cell order as layoutColumns.
func layoutRowValues(board ntmodel.Board) []uint8 {
	values := make([]uint8, 0, ntmodel.NumCells*3)
	for _, ot := range board {
		values = append(values, uint8(ot.Piece), uint8(ot.Side), uint8(ot.Orientation))
	}
	return values
}

// statRowValues flattens a Stats record into the same order statColumns
// names them in.
func statRowValues(stats analyzer.Stats) []uint8 {
	return []uint8{
		uint8(stats.TotalHouses),
		uint8(stats.TotalUFOs),
		uint8(stats.TotalGirls),
		uint8(stats.TotalBoys),
		uint8(stats.TotalDogs),
		uint8(stats.TotalHamburgers),
		uint8(stats.TotalAliens),
		uint8(stats.TotalAgents),
		uint8(stats.TotalCapturedAliens),
		uint8(stats.TotalCurves),
		uint8(stats.TotalTilesWithoutRoads),
		uint8(stats.TotalRoads),
		uint8(stats.LongestRoadSize),
		uint8(stats.MaxRoadsOfSameLength),
		uint8(stats.AliensCaught),
		uint8(stats.FoodChainSets),
		uint8(stats.MaxAliensBetweenTwoAgents),
		uint8(stats.MaxHamburgersInFrontOfAlien),
		uint8(stats.MaxAliensRunningTowardsAgent),
		uint8(stats.MaxAgentsOnOneRoad),
		uint8(stats.MaxAliensOnOneRoad),
		uint8(stats.LargestDogGroup),
		uint8(stats.LargestHouseGroup),
		uint8(stats.LargestCitizenGroup),
		uint8(stats.LargestSafeZoneSize),
		uint8(stats.AliensTimesUFOs),
		uint8(stats.AliensTimesHamburgers),
		uint8(stats.CitizenDogPairs),
	}
}

// BoardFromRow reconstructs a board from a row's 27 layout values, in
// layoutColumns order — the inverse of layoutRowValues, used by
// pkg/ntexport to turn a selected row back into a `p{r}{c}` layout map.
func BoardFromRow(layout []uint8) ntmodel.Board {
	var board ntmodel.Board
	for pos := 0; pos < ntmodel.NumCells; pos++ {
		i := pos * 3
		board[pos] = &ntmodel.OrientedTile{
			Piece:       int(layout[i]),
			Side:        int(layout[i+1]),
			Orientation: int(layout[i+2]),
		}
	}
	return board
}
