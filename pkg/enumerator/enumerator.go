package enumerator

import (
	"context"

	"github.com/ntpanic/solver/pkg/ntindex"
	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/unionfind"
)

// Enumerator holds the static, read-only tables every search shares.
type Enumerator struct {
	catalog ntmodel.TileCatalog
	index   *ntindex.Index
}

// New builds an Enumerator over a compiled catalogue and connection index.
func New(catalog ntmodel.TileCatalog, index *ntindex.Index) *Enumerator {
	return &Enumerator{catalog: catalog, index: index}
}

// Seed is a partial board to resume enumeration from (§4.3 "Inputs"): the
// partition's pre-placed tiles, the remaining pieces, and the Union-Find
// reflecting the roads those tiles already induced.
type Seed struct {
	Board     ntmodel.Board
	Available Available
	UF        unionfind.UnionFind
}

// Emit is called once per completed valid tiling. Returning false stops the
// enumeration early (e.g. a caller that only wants the first solution).
type Emit func(ntmodel.Board) bool

// Enumerate runs the backtracking search from seed, calling emit for every
// valid, fully-filled tiling it finds (§4.3 step 1). Emission order is
// deterministic for a fixed candidate ordering (§4.3 "Determinism").
func (e *Enumerator) Enumerate(ctx context.Context, seed Seed, emit Emit) error {
	domains := InitialDomains(e.index, seed.Board, seed.Available)
	_, err := e.backtrack(ctx, seed.Board, seed.Available, seed.UF, domains, emit)
	return err
}

// backtrack implements §4.3 steps 1-3. board and available are plain arrays
// so each recursive call naturally operates on its own copy; only domains
// (a map) needs an explicit clone per branch, produced by forwardCheck.
func (e *Enumerator) backtrack(ctx context.Context, board ntmodel.Board, available Available, uf unionfind.UnionFind, domains Domains, emit Emit) (stop bool, err error) {
	select {
	case <-ctx.Done():
		return true, ctx.Err()
	default:
	}

	if len(domains) == 0 {
		return !emit(board), nil
	}

	position := pickMRV(domains)

	for _, candidate := range domains[position] {
		ufCopy := uf.Copy()
		if PlacementCyclesRoads(e.catalog, &ufCopy, position, candidate) {
			continue
		}

		nextBoard := board
		placed := candidate
		nextBoard[position] = &ntmodel.OrientedTile{Piece: placed.Piece, Side: placed.Side, Orientation: placed.Orientation}

		nextAvailable := available
		nextAvailable[candidate.Piece] = false

		nextDomains, deadEnd := forwardCheck(e.index, nextBoard, nextAvailable, domains, position)
		if deadEnd {
			continue
		}

		stop, err := e.backtrack(ctx, nextBoard, nextAvailable, ufCopy, nextDomains, emit)
		if err != nil || stop {
			return stop, err
		}
	}

	return false, nil
}

// PlacementCyclesRoads unions every road induced by placing candidate at
// position into uf. It returns true — and leaves uf partially updated but
// discarded by the caller — the moment any union would close a cycle
// (§4.3 step 3a). Exported so pkg/partition can apply the same rule while
// seeding tasks.
func PlacementCyclesRoads(catalog ntmodel.TileCatalog, uf *unionfind.UnionFind, position int, candidate ntmodel.OrientedTile) bool {
	for _, road := range catalog[candidate.Piece][candidate.Side].Roads {
		g1 := ntmodel.GlobalNode(position, road.Connection[0], candidate.Orientation)
		g2 := ntmodel.GlobalNode(position, road.Connection[1], candidate.Orientation)
		if uf.Union(g1, g2) {
			return true
		}
	}
	return false
}
