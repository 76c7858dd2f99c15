// Package ntmodel defines the static data model shared by every stage of
// the solver: the tile and card catalogues, the oriented-tile rotation
// math, and the fixed 24-node board topology.
//
// Everything here is loaded or computed once and treated as immutable for
// the remainder of a run; every downstream package (ntindex, enumerator,
// analyzer, ...) holds read-only references into it.
package ntmodel
