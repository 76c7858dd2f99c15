// Package enumerator implements the backtracking constraint-satisfaction
// search over the 3x3 board (§4.3): minimum-remaining-values cell
// selection, forward checking, and incremental road-cycle pruning via
// pkg/unionfind.
//
// The search never throws: a partial path that cannot be completed is
// simply pruned (§4.3 "Failure semantics"). The only way to stop early is
// for the caller's emit callback to return false, or for the context to be
// cancelled.
package enumerator
