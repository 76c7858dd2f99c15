package analyzer

import "github.com/ntpanic/solver/pkg/ntmodel"

// Analyze computes the full statistics record for one complete tiling
// (§4.5). It returns a TopologyError if the road graph violates the
// path-shaped-component invariant a valid catalogue always upholds.
func Analyze(board ntmodel.Board, catalog ntmodel.TileCatalog) (Stats, error) {
	var stats Stats

	addSimpleAggregates(&stats, board, catalog)

	edges := buildRoadEdges(board, catalog)
	components, err := buildComponents(edges)
	if err != nil {
		return Stats{}, err
	}
	addRoadGraphStats(&stats, components)
	addDirectionalStats(&stats, edges, components)

	addAdjacencyStats(&stats, board, catalog)
	addCompoundStats(&stats)

	return stats, nil
}
