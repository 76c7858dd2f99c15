// Package score computes per-card scores and the geometric-mean
// super_score (§4.8), then selects the best tiling for every combination of
// 1, 2, 3, or all scorable cards (§4.9). It also exposes a Pareto-frontier
// primitive (supplemented from original_source/verify_winner_trio.py's
// find_undefeated_trios_sql) for multiplayer "unbeatable trio" analysis
// built on top of the core ranking.
package score
