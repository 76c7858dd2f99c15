// Package ntstore is the columnar writer, merger, and loader for completed
// tilings (§4.6). Each worker in pkg/partition owns one ntstore.Writer,
// appending rows in chunks to an independent Arrow IPC file; ntstore.Merge
// then combines every worker's file into a single logical relation that
// pkg/percentile and pkg/score read back.
//
// Every row carries 27 layout columns (piece/side/orientation per cell),
// the flattened pkg/analyzer.Stats columns, and a generated row identity —
// all as 8-bit unsigned integers except the identity column, matching §6's
// "narrow unsigned integers" storage contract.
package ntstore
