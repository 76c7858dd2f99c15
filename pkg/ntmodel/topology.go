package ntmodel

// OrientedTile is a (piece, side, orientation) triple — one way a physical
// tile can sit in a cell (§3).
type OrientedTile struct {
	Piece       int
	Side        int
	Orientation int
}

// EdgeMask is a 4-bit indicator [W, N, E, S] of which edges of an oriented
// tile carry a road endpoint (§3).
type EdgeMask [4]bool

// Rotate returns e's local edge index shifted by a cyclic rotation of
// orientation steps: rotating by O shifts local edge e to (e+O) mod 4.
func Rotate(localEdge, orientation int) int {
	return (localEdge + orientation) % 4
}

// Mirror returns the edge on the opposite side of a shared boundary: the
// east edge of one cell is the west edge of its neighbour, and north/south
// likewise.
func Mirror(edge int) int {
	switch edge {
	case EdgeW:
		return EdgeE
	case EdgeE:
		return EdgeW
	case EdgeN:
		return EdgeS
	case EdgeS:
		return EdgeN
	}
	return edge
}

// BaseEdgeMask computes the orientation-0 edge mask for a tile side by
// scanning its roads.
func BaseEdgeMask(side TileSide) EdgeMask {
	var m EdgeMask
	for _, road := range side.Roads {
		m[road.Connection[0]] = true
		m[road.Connection[1]] = true
	}
	return m
}

// RotateMask applies orientation O to a base (orientation-0) edge mask:
// edge_mask[O][i] = edge_mask[0][(i-O) mod 4], per §4.1.
func RotateMask(base EdgeMask, orientation int) EdgeMask {
	var m EdgeMask
	for i := 0; i < 4; i++ {
		src := ((i-orientation)%4 + 4) % 4
		m[i] = base[src]
	}
	return m
}

// GridSize is the board's side length.
const GridSize = 3

// NumCells is the number of board positions.
const NumCells = GridSize * GridSize

// NumNodes is the number of distinct board-edge midpoints in the road
// graph (§3).
const NumNodes = 24

// TileNodes assigns a global node id to each (position, local edge) pair.
// Interior edges are shared between neighbouring cells; border edges have
// unique ids. This is the canonical numbering from the original
// implementation's constants table (§6).
var TileNodes = [NumCells][4]int{
	{3, 0, 4, 7},
	{4, 1, 5, 8},
	{5, 2, 6, 9},
	{10, 7, 11, 14},
	{11, 8, 12, 15},
	{12, 9, 13, 16},
	{17, 14, 18, 21},
	{18, 15, 19, 22},
	{19, 16, 20, 23},
}

// Position maps a (row, col) coordinate to a flat board position.
func Position(row, col int) int { return row*GridSize + col }

// RowCol maps a flat board position back to (row, col).
func RowCol(position int) (row, col int) { return position / GridSize, position % GridSize }

// GlobalNode returns the global node id for a position's local edge under
// a given orientation.
func GlobalNode(position, localEdge, orientation int) int {
	return TileNodes[position][Rotate(localEdge, orientation)]
}

// Board is a 3x3 grid of oriented tiles. A nil entry means the cell is
// empty.
type Board [NumCells]*OrientedTile

// Clone returns a deep copy of the board (the *OrientedTile values are
// copied, not shared).
func (b Board) Clone() Board {
	var out Board
	for i, t := range b {
		if t != nil {
			cp := *t
			out[i] = &cp
		}
	}
	return out
}

// PiecesUsed returns the set of piece indices currently placed.
func (b Board) PiecesUsed() map[int]bool {
	used := make(map[int]bool, NumCells)
	for _, t := range b {
		if t != nil {
			used[t.Piece] = true
		}
	}
	return used
}
