package partition

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ntpanic/solver/pkg/enumerator"
	"github.com/ntpanic/solver/pkg/ntindex"
	"github.com/ntpanic/solver/pkg/ntmodel"
)

// Sink receives every tiling emitted by a worker. Implementations (pkg/ntstore)
// own their own output file exclusively and must not be shared across
// workers (§5 "Isolation").
type Sink interface {
	Write(ctx context.Context, board ntmodel.Board) error
	Close() error
}

// SinkFactory opens one Sink per worker, identified by a zero-based worker
// index, so each worker can name its own output file.
type SinkFactory func(workerIndex int) (Sink, error)

// Run fans tasks out across a pool of workers sized to the number of logical
// CPUs (§5 "Scheduling model": one worker per hardware thread), or to
// workers if workers > 0. Each worker pulls tasks from a shared channel —
// the only point of contention, and a cheap one, since the channel holds
// only the already-materialised task slice (§4.4 "no ordering guarantee").
func Run(ctx context.Context, catalog ntmodel.TileCatalog, index *ntindex.Index, tasks []Task, workers int, newSink SinkFactory, log *slog.Logger) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = slog.Default()
	}

	queue := make(chan Task)
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(queue)
		for _, task := range tasks {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case queue <- task:
			}
		}
		return nil
	})

	e := enumerator.New(catalog, index)
	for w := 0; w < workers; w++ {
		workerIndex := w
		group.Go(func() error {
			sink, err := newSink(workerIndex)
			if err != nil {
				return fmt.Errorf("worker %d: opening sink: %w", workerIndex, err)
			}
			closed := false
			defer func() {
				if !closed {
					sink.Close()
				}
			}()

			emitted := 0
			for task := range queue {
				var writeErr error
				enumErr := e.Enumerate(gctx, task.Seed, func(board ntmodel.Board) bool {
					if err := sink.Write(gctx, board); err != nil {
						writeErr = err
						return false
					}
					emitted++
					return true
				})
				if writeErr != nil {
					return fmt.Errorf("worker %d on %s: writing tiling: %w", workerIndex, task, writeErr)
				}
				if enumErr != nil {
					return fmt.Errorf("worker %d on %s: %w", workerIndex, task, enumErr)
				}
			}
			log.InfoContext(gctx, "worker finished", "worker", workerIndex, "tilings_emitted", emitted)
			closed = true
			return sink.Close()
		})
	}

	return group.Wait()
}
