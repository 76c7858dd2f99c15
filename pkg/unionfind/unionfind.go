// Package unionfind implements the fixed-size, path-compressing disjoint
// set used by the enumerator to detect road cycles incrementally (§4.2).
//
// The structure is a plain 24-element array: cheap enough to copy outright
// on every branch rather than tracking and reverting individual unions, so
// backtracking never mutates a sibling branch's state.
package unionfind

// UnionFind is a disjoint-set over a fixed number of nodes.
type UnionFind struct {
	parent [24]int8
}

// New returns a UnionFind with every node its own root.
func New() UnionFind {
	var uf UnionFind
	for i := range uf.parent {
		uf.parent[i] = int8(i)
	}
	return uf
}

// Find returns the root of i, compressing the path as it walks up.
func (uf *UnionFind) Find(i int) int {
	if int(uf.parent[i]) == i {
		return i
	}
	root := uf.Find(int(uf.parent[i]))
	uf.parent[i] = int8(root)
	return root
}

// Union merges the sets containing i and j. It returns true if i and j
// were already in the same set — i.e. this union would close a cycle — in
// which case no merge happens.
func (uf *UnionFind) Union(i, j int) (cycle bool) {
	ri, rj := uf.Find(i), uf.Find(j)
	if ri == rj {
		return true
	}
	uf.parent[ri] = int8(rj)
	return false
}

// Copy returns an independent snapshot: the 24-byte parent array is copied
// by value, so mutating the copy never affects uf.
func (uf UnionFind) Copy() UnionFind {
	return uf
}
