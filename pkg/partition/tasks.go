package partition

import (
	"fmt"

	"github.com/ntpanic/solver/internal/ntkerrors"
	"github.com/ntpanic/solver/pkg/enumerator"
	"github.com/ntpanic/solver/pkg/ntindex"
	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/unionfind"
)

// seedCells are the three geometrically distinct cells spec §4.4 names: a
// corner, an edge-mid, and the board centre.
var seedCells = []int{0, 1, 4}

// Task is one independent unit of work: a seeded enumerator.Seed ready to
// hand to Enumerate.
type Task struct {
	ID   int
	Seed enumerator.Seed
}

// SeedPieceTasks builds the first-level task set: seedPiece placed into each
// of the three distinct cells, in every (side, orientation) (§4.4
// "Strategy"). Any fixed piece index yields a correct partition; callers
// typically pass piece 0 or piece 6.
func SeedPieceTasks(catalog ntmodel.TileCatalog, index *ntindex.Index, seedPiece int) ([]Task, error) {
	if seedPiece < 0 || seedPiece >= len(catalog) {
		return nil, ntkerrors.NewTopologyError(seedPiece, 0, 0, "seed piece index out of range")
	}

	var tasks []Task
	for _, position := range seedCells {
		for side := 0; side < ntmodel.NumSides; side++ {
			for orientation := 0; orientation < ntmodel.NumOrientations; orientation++ {
				candidate := ntmodel.OrientedTile{Piece: seedPiece, Side: side, Orientation: orientation}

				var board ntmodel.Board
				uf := unionfind.New()
				if enumerator.PlacementCyclesRoads(catalog, &uf, position, candidate) {
					// A single tile can never close a cycle against an
					// otherwise empty board; this branch exists only to
					// keep the invariant explicit should a pathological
					// catalogue violate it.
					continue
				}
				board[position] = &ntmodel.OrientedTile{Piece: candidate.Piece, Side: candidate.Side, Orientation: candidate.Orientation}

				available := enumerator.NewAvailable(map[int]bool{seedPiece: true})
				seed := enumerator.Seed{
					Board:     board,
					Available: available,
					UF:        uf,
				}
				tasks = append(tasks, Task{Seed: seed})
			}
		}
	}

	assignIDs(tasks)
	return tasks, nil
}

// ExpandSecondSeed refines a one-piece task set into a two-piece task set:
// for every task, every still-empty cell, and every candidate compatible
// with that cell's current domain, one child task is emitted (§4.4
// "Under a two-piece seed strategy"). This multiplies task count and
// granularity, useful when the machine has many more hardware threads than
// the 24 one-piece tasks provide.
func ExpandSecondSeed(catalog ntmodel.TileCatalog, index *ntindex.Index, parents []Task) []Task {
	var tasks []Task
	for _, parent := range parents {
		domains := enumerator.InitialDomains(index, parent.Seed.Board, parent.Seed.Available)
		for position, candidates := range domains {
			for _, candidate := range candidates {
				ufCopy := parent.Seed.UF.Copy()
				if enumerator.PlacementCyclesRoads(catalog, &ufCopy, position, candidate) {
					continue
				}

				board := parent.Seed.Board
				board[position] = &ntmodel.OrientedTile{Piece: candidate.Piece, Side: candidate.Side, Orientation: candidate.Orientation}

				available := parent.Seed.Available
				available[candidate.Piece] = false

				tasks = append(tasks, Task{Seed: enumerator.Seed{
					Board:     board,
					Available: available,
					UF:        ufCopy,
				}})
			}
		}
	}

	assignIDs(tasks)
	return tasks
}

func assignIDs(tasks []Task) {
	for i := range tasks {
		tasks[i].ID = i
	}
}

// String renders a task's seed placements, used in worker progress logs.
func (t Task) String() string {
	placed := make([]string, 0, ntmodel.NumCells)
	for pos, ot := range t.Seed.Board {
		if ot != nil {
			placed = append(placed, fmt.Sprintf("p%d=%d/%d/%d", pos, ot.Piece, ot.Side, ot.Orientation))
		}
	}
	return fmt.Sprintf("task#%d{%v}", t.ID, placed)
}
