package ntstore

import (
	"context"
	"log/slog"
	"os"

	"github.com/apache/arrow/go/v15/arrow/array"
	"github.com/apache/arrow/go/v15/arrow/ipc"
	"github.com/apache/arrow/go/v15/arrow/memory"
	"github.com/google/uuid"

	"github.com/ntpanic/solver/internal/ntkerrors"
	"github.com/ntpanic/solver/pkg/analyzer"
	"github.com/ntpanic/solver/pkg/ntmodel"
)

// defaultChunkRows is used when a Writer is built with chunkRows <= 0.
const defaultChunkRows = 100_000

// Writer buffers rows into Arrow record batches and appends them to one
// Arrow IPC file, flushing a batch every chunkRows rows (§4.6). It
// implements pkg/partition.Sink, so one Writer is the natural per-worker
// output.
type Writer struct {
	file      *os.File
	ipcWriter *ipc.FileWriter
	builder   *array.RecordBuilder
	catalog   ntmodel.TileCatalog
	chunkRows int
	buffered  int
	closed    bool

	log          *slog.Logger
	workerIndex  int
	totalWritten int
}

// WithLogger attaches a logger that reports one Debug line per chunk
// flush, naming the worker index and the running row total — carrying
// original_source/utils.py's SolutionWriter progress counter into
// structured logging. Returns w for chaining at the NewWriter call site.
func (w *Writer) WithLogger(log *slog.Logger, workerIndex int) *Writer {
	w.log = log
	w.workerIndex = workerIndex
	return w
}

// NewWriter creates path and opens an Arrow IPC file writer against it.
func NewWriter(path string, catalog ntmodel.TileCatalog, chunkRows int) (*Writer, error) {
	if chunkRows <= 0 {
		chunkRows = defaultChunkRows
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, ntkerrors.NewIOError("create", path, err)
	}

	mem := memory.NewGoAllocator()
	schema := Schema()
	iw, err := ipc.NewFileWriter(f, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err != nil {
		f.Close()
		return nil, ntkerrors.NewIOError("open ipc writer", path, err)
	}

	return &Writer{
		file:      f,
		ipcWriter: iw,
		builder:   array.NewRecordBuilder(mem, schema),
		catalog:   catalog,
		chunkRows: chunkRows,
	}, nil
}

// Write analyzes board and appends its row to the current batch, flushing
// if the batch has reached chunkRows (§4.6 "Writing is chunked").
func (w *Writer) Write(ctx context.Context, board ntmodel.Board) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stats, err := analyzer.Analyze(board, w.catalog)
	if err != nil {
		return err
	}
	w.appendRow(board, stats)

	w.buffered++
	if w.buffered >= w.chunkRows {
		return w.flush()
	}
	return nil
}

func (w *Writer) appendRow(board ntmodel.Board, stats analyzer.Stats) {
	col := 0

	w.builder.Field(col).(*array.StringBuilder).Append(uuid.NewString())
	col++

	for _, v := range layoutRowValues(board) {
		w.builder.Field(col).(*array.Uint8Builder).Append(v)
		col++
	}
	for _, v := range statRowValues(stats) {
		w.builder.Field(col).(*array.Uint8Builder).Append(v)
		col++
	}
}

// flush writes the currently buffered rows as one record batch. NewRecord
// resets the underlying builders, so the batch is ready for the next chunk
// immediately after.
func (w *Writer) flush() error {
	if w.buffered == 0 {
		return nil
	}
	record := w.builder.NewRecord()
	defer record.Release()

	if err := w.ipcWriter.Write(record); err != nil {
		return ntkerrors.NewIOError("write batch", w.file.Name(), err)
	}
	w.totalWritten += w.buffered
	if w.log != nil {
		w.log.Debug("flushed chunk", "worker", w.workerIndex, "rows", w.buffered, "total", w.totalWritten)
	}
	w.buffered = 0
	return nil
}

// Close flushes any remaining buffered rows, finalizes the IPC footer, and
// closes the underlying file (§4.6 "closed atomically").
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	defer w.builder.Release()

	if err := w.flush(); err != nil {
		w.file.Close()
		return err
	}
	if err := w.ipcWriter.Close(); err != nil {
		w.file.Close()
		return ntkerrors.NewIOError("close ipc writer", w.file.Name(), err)
	}
	if err := w.file.Close(); err != nil {
		return ntkerrors.NewIOError("close", w.file.Name(), err)
	}
	return nil
}
