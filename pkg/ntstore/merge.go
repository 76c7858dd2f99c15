package ntstore

import (
	"os"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

// MultiReader presents several per-worker Arrow IPC files as one logical
// relation (§4.6 "a view that reads them all"), without copying any data.
type MultiReader struct {
	readers []*Reader
	schema  *arrow.Schema
}

// OpenMulti opens every path in paths and checks they share one schema.
func OpenMulti(paths []string) (*MultiReader, error) {
	if len(paths) == 0 {
		return &MultiReader{schema: Schema()}, nil
	}

	readers := make([]*Reader, 0, len(paths))
	first, err := OpenReader(paths[0], nil)
	if err != nil {
		return nil, err
	}
	readers = append(readers, first)

	for i, path := range paths[1:] {
		r, err := OpenReader(path, nil)
		if err != nil {
			closeAll(readers)
			return nil, err
		}
		if !r.Schema().Equal(first.Schema()) {
			r.Close()
			closeAll(readers)
			return nil, ntkerrors.NewInconsistentWorkerError(0, i+1, "worker output schemas differ")
		}
		readers = append(readers, r)
	}

	return &MultiReader{readers: readers, schema: first.Schema()}, nil
}

func closeAll(readers []*Reader) {
	for _, r := range readers {
		r.Close()
	}
}

// Schema returns the shared schema.
func (m *MultiReader) Schema() *arrow.Schema { return m.schema }

// ForEach invokes fn with every record batch across every file, worker by
// worker, in the order OpenMulti received the paths — no global ordering is
// guaranteed or needed (§5 "every consumer treats the tiling set as a
// multiset").
func (m *MultiReader) ForEach(fn func(arrow.Record) error) error {
	for _, r := range m.readers {
		if err := r.ForEach(fn); err != nil {
			return err
		}
	}
	return nil
}

// Close releases every underlying file.
func (m *MultiReader) Close() error {
	var firstErr error
	for _, r := range m.readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Merge copies every record batch from paths into one new file at outPath
// (§4.6 "a copy into one file"), failing with an InconsistentWorkerError if
// the inputs' schemas disagree.
func Merge(paths []string, outPath string) error {
	src, err := OpenMulti(paths)
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return ntkerrors.NewIOError("create", outPath, err)
	}

	w, err := ipc.NewFileWriter(out, ipc.WithSchema(src.Schema()), ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		out.Close()
		return ntkerrors.NewIOError("open ipc writer", outPath, err)
	}

	writeErr := src.ForEach(func(rec arrow.Record) error {
		return w.Write(rec)
	})
	if writeErr != nil {
		w.Close()
		out.Close()
		return ntkerrors.NewIOError("write merged batch", outPath, writeErr)
	}

	if err := w.Close(); err != nil {
		out.Close()
		return ntkerrors.NewIOError("close ipc writer", outPath, err)
	}
	return out.Close()
}
