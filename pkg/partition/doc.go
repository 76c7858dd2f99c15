// Package partition splits the full search space into independent seeded
// tasks (§4.4) and drives them across a worker pool (§5 "Scheduling model").
//
// Every task owns its board, available-piece set and Union-Find exclusively;
// workers never contend on shared mutable state beyond the task queue that
// errgroup.Group hands out before any worker starts.
package partition
