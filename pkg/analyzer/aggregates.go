package analyzer

import "github.com/ntpanic/solver/pkg/ntmodel"

// addSimpleAggregates sums houses/ufos/girls/boys/dogs/hamburgers/aliens/
// agents/captured_aliens/curves across the nine placed tiles, plus the
// count of tiles whose roads list is empty (§4.5 "Simple aggregates").
func addSimpleAggregates(stats *Stats, board ntmodel.Board, catalog ntmodel.TileCatalog) {
	for _, ot := range board {
		side := catalog[ot.Piece][ot.Side]
		stats.TotalHouses += side.Houses
		stats.TotalUFOs += side.UFOs
		stats.TotalGirls += side.Girls
		stats.TotalBoys += side.Boys
		stats.TotalDogs += side.Dogs
		stats.TotalHamburgers += side.Hamburgers
		stats.TotalAliens += side.Aliens
		stats.TotalAgents += side.Agents
		stats.TotalCapturedAliens += side.CapturedAliens
		stats.TotalCurves += side.Curves

		if len(side.Roads) == 0 {
			stats.TotalTilesWithoutRoads++
		}
	}
}
