package analyzer

import "github.com/ntpanic/solver/pkg/ntmodel"

// cellProperty extracts one boolean "positive" property from a tile side,
// as used by the 4-connected grid components (§4.5 "Adjacency-component
// statistics").
type cellProperty func(ntmodel.TileSide) bool

// largestComponent finds the largest 4-connected group of grid cells whose
// property is positive, by breadth-first search — a direct translation of
// original_source/analysis.py's find_largest_component_size.
func largestComponent(board ntmodel.Board, catalog ntmodel.TileCatalog, positive cellProperty) int {
	var positiveCell [ntmodel.NumCells]bool
	for pos, ot := range board {
		positiveCell[pos] = positive(catalog[ot.Piece][ot.Side])
	}

	visited := make(map[int]bool, ntmodel.NumCells)
	maxSize := 0

	for start := 0; start < ntmodel.NumCells; start++ {
		if !positiveCell[start] || visited[start] {
			continue
		}

		size := 0
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			size++

			row, col := ntmodel.RowCol(cur)
			for _, d := range [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
				nr, nc := row+d[0], col+d[1]
				if nr < 0 || nr >= ntmodel.GridSize || nc < 0 || nc >= ntmodel.GridSize {
					continue
				}
				next := ntmodel.Position(nr, nc)
				if !visited[next] && positiveCell[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		if size > maxSize {
			maxSize = size
		}
	}

	return maxSize
}

// addAdjacencyStats computes the four largest-group statistics over the
// dogs, houses, citizens (boys+girls), and safe (zero aliens) properties.
func addAdjacencyStats(stats *Stats, board ntmodel.Board, catalog ntmodel.TileCatalog) {
	stats.LargestDogGroup = largestComponent(board, catalog, func(s ntmodel.TileSide) bool { return s.Dogs > 0 })
	stats.LargestHouseGroup = largestComponent(board, catalog, func(s ntmodel.TileSide) bool { return s.Houses > 0 })
	stats.LargestCitizenGroup = largestComponent(board, catalog, func(s ntmodel.TileSide) bool { return s.Citizens() > 0 })
	stats.LargestSafeZoneSize = largestComponent(board, catalog, func(s ntmodel.TileSide) bool { return s.Safe() })
}
