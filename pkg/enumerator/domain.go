package enumerator

import (
	"github.com/ntpanic/solver/pkg/ntindex"
	"github.com/ntpanic/solver/pkg/ntmodel"
)

// Available tracks which pieces remain unplaced. True means the piece at
// that index is still available.
type Available [ntmodel.NumPieces]bool

// NewAvailable returns the set of pieces not present in used.
func NewAvailable(used map[int]bool) Available {
	var a Available
	for p := 0; p < ntmodel.NumPieces; p++ {
		a[p] = !used[p]
	}
	return a
}

// Remaining reports how many pieces are still available.
func (a Available) Remaining() int {
	n := 0
	for _, ok := range a {
		if ok {
			n++
		}
	}
	return n
}

// Domains maps an empty cell's board position to its current list of
// compatible oriented tiles (the GLOSSARY's "domain").
type Domains map[int][]ntmodel.OrientedTile

// requiredForCell derives the required edge vector for an empty cell from
// its already-placed row/column neighbours (§4.3 "Domain recomputation").
// Edges adjoining the border or an empty neighbour are left unconstrained.
func requiredForCell(board ntmodel.Board, ix *ntindex.Index, position int) ntindex.Required {
	row, col := ntmodel.RowCol(position)
	req := ntindex.Required{ntindex.NoConstraint, ntindex.NoConstraint, ntindex.NoConstraint, ntindex.NoConstraint}

	if row > 0 {
		if nb := board[ntmodel.Position(row-1, col)]; nb != nil {
			req[ntmodel.EdgeN] = boolToReq(ix.Mask(*nb)[ntmodel.EdgeS])
		}
	}
	if row < ntmodel.GridSize-1 {
		if nb := board[ntmodel.Position(row+1, col)]; nb != nil {
			req[ntmodel.EdgeS] = boolToReq(ix.Mask(*nb)[ntmodel.EdgeN])
		}
	}
	if col > 0 {
		if nb := board[ntmodel.Position(row, col-1)]; nb != nil {
			req[ntmodel.EdgeW] = boolToReq(ix.Mask(*nb)[ntmodel.EdgeE])
		}
	}
	if col < ntmodel.GridSize-1 {
		if nb := board[ntmodel.Position(row, col+1)]; nb != nil {
			req[ntmodel.EdgeE] = boolToReq(ix.Mask(*nb)[ntmodel.EdgeW])
		}
	}
	return req
}

func boolToReq(present bool) int {
	if present {
		return ntindex.Present
	}
	return ntindex.Absent
}

// computeDomain returns the candidate list for one empty cell: the
// precomputed candidates for its required-edge vector, intersected with the
// currently available pieces.
func computeDomain(board ntmodel.Board, ix *ntindex.Index, available Available, position int) []ntmodel.OrientedTile {
	req := requiredForCell(board, ix, position)
	candidates := ix.CandidatesFor(req)

	out := make([]ntmodel.OrientedTile, 0, len(candidates))
	for _, c := range candidates {
		if available[c.Piece] {
			out = append(out, c)
		}
	}
	return out
}

// InitialDomains computes the domain of every empty cell on board given the
// available piece set. Exported for pkg/partition, which needs it to seed
// each task.
func InitialDomains(ix *ntindex.Index, board ntmodel.Board, available Available) Domains {
	domains := make(Domains, ntmodel.NumCells)
	for pos := 0; pos < ntmodel.NumCells; pos++ {
		if board[pos] == nil {
			domains[pos] = computeDomain(board, ix, available, pos)
		}
	}
	return domains
}

// pickMRV returns the empty cell with the fewest candidates, ties broken by
// grid order (the GLOSSARY's "MRV" heuristic).
func pickMRV(domains Domains) int {
	best := -1
	for pos := 0; pos < ntmodel.NumCells; pos++ {
		cands, ok := domains[pos]
		if !ok {
			continue
		}
		if best == -1 || len(cands) < len(domains[best]) {
			best = pos
		}
	}
	return best
}

// forwardCheck recomputes every remaining empty cell's domain after placing
// a tile at placedPos. It returns (nil, true) if any cell's domain becomes
// empty — a dead end per §4.3 step 3c.
func forwardCheck(ix *ntindex.Index, board ntmodel.Board, available Available, domains Domains, placedPos int) (Domains, bool) {
	next := make(Domains, len(domains)-1)
	for pos := range domains {
		if pos == placedPos {
			continue
		}
		cands := computeDomain(board, ix, available, pos)
		if len(cands) == 0 {
			return nil, true
		}
		next[pos] = cands
	}
	return next, false
}
