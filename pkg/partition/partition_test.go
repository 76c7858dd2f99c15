package partition

import (
	"context"
	"sync"
	"testing"

	"github.com/ntpanic/solver/pkg/enumerator"
	"github.com/ntpanic/solver/pkg/ntindex"
	"github.com/ntpanic/solver/pkg/ntmodel"
	"github.com/ntpanic/solver/pkg/unionfind"
)

func blankCatalog() ntmodel.TileCatalog {
	return make(ntmodel.TileCatalog, ntmodel.NumPieces)
}

func seedFor(board ntmodel.Board, used map[int]bool) enumerator.Seed {
	return enumerator.Seed{
		Board:     board,
		Available: enumerator.NewAvailable(used),
		UF:        unionfind.New(),
	}
}

func TestSeedPieceTasksCoversEveryCellSideOrientation(t *testing.T) {
	catalog := blankCatalog()
	index := ntindex.Build(catalog)

	tasks, err := SeedPieceTasks(catalog, index, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := len(seedCells) * ntmodel.NumSides * ntmodel.NumOrientations
	if len(tasks) != want {
		t.Fatalf("len(tasks) = %d, want %d", len(tasks), want)
	}

	for _, task := range tasks {
		placedAt := -1
		for pos, ot := range task.Seed.Board {
			if ot != nil {
				if placedAt != -1 {
					t.Fatalf("task %d has more than one placed tile", task.ID)
				}
				placedAt = pos
				if ot.Piece != 3 {
					t.Fatalf("task %d placed piece %d, want 3", task.ID, ot.Piece)
				}
			}
		}
		if placedAt == -1 {
			t.Fatalf("task %d placed no tile", task.ID)
		}
		if task.Seed.Available[3] {
			t.Fatalf("task %d: seed piece still marked available", task.ID)
		}
	}
}

func TestSeedPieceTasksRejectsOutOfRangePiece(t *testing.T) {
	catalog := blankCatalog()
	index := ntindex.Build(catalog)

	if _, err := SeedPieceTasks(catalog, index, ntmodel.NumPieces); err == nil {
		t.Fatal("expected an error for an out-of-range seed piece")
	}
}

func TestExpandSecondSeedPlacesOneAdditionalTile(t *testing.T) {
	catalog := blankCatalog()
	index := ntindex.Build(catalog)

	parents, err := SeedPieceTasks(catalog, index, 0)
	if err != nil {
		t.Fatal(err)
	}

	children := ExpandSecondSeed(catalog, index, parents)
	if len(children) == 0 {
		t.Fatal("expected at least one second-level task")
	}

	for _, task := range children {
		placed := task.Seed.Board.PiecesUsed()
		if len(placed) != 2 {
			t.Fatalf("task %d has %d placed pieces, want 2", task.ID, len(placed))
		}
	}
}

// recordingSink is a test Sink that appends every emitted board under a
// mutex, standing in for pkg/ntstore's real Arrow writer.
type recordingSink struct {
	mu     sync.Mutex
	boards []ntmodel.Board
	closed bool
}

func (s *recordingSink) Write(_ context.Context, board ntmodel.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards = append(s.boards, board)
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// TestRunDistributesAcrossWorkersAndClosesAllSinks exercises the worker pool
// with a reduced-scale partition (seven of nine cells pre-filled, two
// remaining) against a blank catalogue, where every completion is valid. It
// asserts every opened sink is closed and the total emitted tiling count
// equals the sum of the two tasks' own completions.
func TestRunDistributesAcrossWorkersAndClosesAllSinks(t *testing.T) {
	catalog := blankCatalog()
	index := ntindex.Build(catalog)

	var board ntmodel.Board
	for i := 0; i < 7; i++ {
		board[i] = &ntmodel.OrientedTile{Piece: i, Side: 0, Orientation: 0}
	}
	used := map[int]bool{}
	for i := 0; i < 7; i++ {
		used[i] = true
	}

	// Build two tasks by fixing piece 7 (side 0, orientation 0) at
	// position 7 in one task and at position 8 in the other; each leaves
	// exactly one cell for piece 8.
	makeTask := func(id, pos int) Task {
		var b ntmodel.Board = board
		b[pos] = &ntmodel.OrientedTile{Piece: 7, Side: 0, Orientation: 0}
		avail := used
		avail[7] = true
		return Task{ID: id, Seed: seedFor(b, avail)}
	}
	tasks := []Task{makeTask(0, 7), makeTask(1, 8)}

	var mu sync.Mutex
	sinks := make([]*recordingSink, 2)
	newSink := func(workerIndex int) (Sink, error) {
		s := &recordingSink{}
		mu.Lock()
		sinks[workerIndex%2] = s
		mu.Unlock()
		return s, nil
	}

	if err := Run(context.Background(), catalog, index, tasks, 2, newSink, nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	total := 0
	for _, s := range sinks {
		if s == nil {
			t.Fatal("a worker never opened its sink")
		}
		if !s.closed {
			t.Fatal("a worker's sink was never closed")
		}
		total += len(s.boards)
	}
	// Each task has exactly one remaining cell and one remaining piece:
	// 2 sides * 4 orientations per task, two tasks.
	want := 2 * (2 * 4)
	if total != want {
		t.Fatalf("total tilings emitted = %d, want %d", total, want)
	}
}
