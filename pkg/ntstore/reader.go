package ntstore

import (
	"os"

	"github.com/apache/arrow/go/v15/arrow"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

// Reader provides sequential access to one worker's Arrow IPC file.
type Reader struct {
	file   *os.File
	ipcR   *ipc.FileReader
	schema *arrow.Schema
}

// OpenReader opens path for reading. When want is non-nil the file's schema
// must equal it, otherwise a CatalogueError is returned; a nil want skips
// the check.
func OpenReader(path string, want *arrow.Schema) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ntkerrors.NewIOError("open", path, err)
	}

	r, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		f.Close()
		return nil, ntkerrors.NewIOError("open ipc reader", path, err)
	}

	if want != nil && !r.Schema().Equal(want) {
		f.Close()
		return nil, ntkerrors.NewCatalogueError(path, "schema does not match the expected columnar layout")
	}

	return &Reader{file: f, ipcR: r, schema: r.Schema()}, nil
}

// Schema returns the file's Arrow schema.
func (r *Reader) Schema() *arrow.Schema { return r.schema }

// NumRecordBatches reports how many record batches the file holds.
func (r *Reader) NumRecordBatches() int { return r.ipcR.NumRecords() }

// ForEach invokes fn with every record batch in the file, in on-disk order.
// The record passed to fn is released after fn returns; callers that need
// to retain data must copy it out.
func (r *Reader) ForEach(fn func(arrow.Record) error) error {
	for i := 0; i < r.ipcR.NumRecords(); i++ {
		rec, err := r.ipcR.Record(i)
		if err != nil {
			return ntkerrors.NewIOError("read batch", r.file.Name(), err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
