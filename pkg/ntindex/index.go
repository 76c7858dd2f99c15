// Package ntindex precomputes the two lookup tables the enumerator needs on
// its hot path (§4.1): the edge mask of every oriented tile, and the
// candidate list for every possible required-edge vector.
package ntindex

import "github.com/ntpanic/solver/pkg/ntmodel"

// Required is a 4-tuple over {-1,0,1} meaning, per edge, "-1 = no
// constraint, 0 = must be absent, 1 = must be present" (§4.1).
type Required [4]int

// NoConstraint, Absent, and Present name the three values a Required slot
// can take.
const (
	NoConstraint = -1
	Absent       = 0
	Present      = 1
)

// Index holds the compiled edge-mask and candidate-list tables for one tile
// catalogue.
type Index struct {
	edgeMask      [ntmodel.NumPieces][ntmodel.NumSides][ntmodel.NumOrientations]ntmodel.EdgeMask
	candidatesFor map[Required][]ntmodel.OrientedTile
}

// Build compiles the connection index from a validated tile catalogue.
func Build(catalog ntmodel.TileCatalog) *Index {
	ix := &Index{candidatesFor: make(map[Required][]ntmodel.OrientedTile, 81)}

	for piece, tile := range catalog {
		for side, ts := range tile {
			base := ntmodel.BaseEdgeMask(ts)
			for o := 0; o < ntmodel.NumOrientations; o++ {
				ix.edgeMask[piece][side][o] = ntmodel.RotateMask(base, o)
			}
		}
	}

	for _, req := range allRequired() {
		var candidates []ntmodel.OrientedTile
		for piece := 0; piece < ntmodel.NumPieces; piece++ {
			for side := 0; side < ntmodel.NumSides; side++ {
				for o := 0; o < ntmodel.NumOrientations; o++ {
					if connects(req, ix.edgeMask[piece][side][o]) {
						candidates = append(candidates, ntmodel.OrientedTile{Piece: piece, Side: side, Orientation: o})
					}
				}
			}
		}
		ix.candidatesFor[req] = candidates
	}

	return ix
}

// Mask returns the precomputed edge mask of an oriented tile.
func (ix *Index) Mask(ot ntmodel.OrientedTile) ntmodel.EdgeMask {
	return ix.edgeMask[ot.Piece][ot.Side][ot.Orientation]
}

// CandidatesFor returns the precomputed candidate list for a required-edge
// vector, in a fixed deterministic order (§4.3 "Determinism"). The
// returned slice must not be mutated by the caller.
func (ix *Index) CandidatesFor(req Required) []ntmodel.OrientedTile {
	return ix.candidatesFor[req]
}

func connects(req Required, mask ntmodel.EdgeMask) bool {
	for i := 0; i < 4; i++ {
		if req[i] == NoConstraint {
			continue
		}
		if mask[i] != (req[i] == Present) {
			return false
		}
	}
	return true
}

func allRequired() []Required {
	values := [3]int{NoConstraint, Absent, Present}
	out := make([]Required, 0, 81)

	var build func(prefix Required, depth int)
	build = func(prefix Required, depth int) {
		if depth == 4 {
			out = append(out, prefix)
			return
		}
		for _, v := range values {
			prefix[depth] = v
			build(prefix, depth+1)
		}
	}
	build(Required{}, 0)
	return out
}
