// Package analyzer computes the flat per-tiling statistics record (§4.5):
// simple aggregates, road-graph reconstruction and ordered walks, the
// directional agent/alien/hamburger features those walks carry, adjacency
// components, and the small set of compound derived statistics.
//
// Analyze never panics on a malformed tiling: a road component with a
// branch vertex — impossible for the real tile set but not excluded by the
// type system — is reported as an ntkerrors.TopologyError rather than
// silently mis-walked.
package analyzer
