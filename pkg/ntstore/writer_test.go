package ntstore

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/ntpanic/solver/pkg/ntmodel"
)

func blankTestCatalog() ntmodel.TileCatalog {
	return make(ntmodel.TileCatalog, ntmodel.NumPieces)
}

func TestWriterReaderRoundTripsRowCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solutions_1.arrow")

	w, err := NewWriter(path, blankTestCatalog(), 2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	const rows = 5
	for i := 0; i < rows; i++ {
		if err := w.Write(context.Background(), fullBoardFor(i)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenReader(path, Schema())
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer r.Close()

	total := int64(0)
	if err := r.ForEach(func(rec arrow.Record) error {
		total += rec.NumRows()
		return nil
	}); err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if total != rows {
		t.Fatalf("total rows read = %d, want %d", total, rows)
	}
}

func TestWriterLogsDebugPerChunkFlush(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solutions_1.arrow")

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	w, err := NewWriter(path, blankTestCatalog(), 2)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	w.WithLogger(log, 3)

	for i := 0; i < 3; i++ {
		if err := w.Write(context.Background(), fullBoardFor(i)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "flushed chunk") {
		t.Fatalf("log output missing chunk-flush line: %q", out)
	}
	if !strings.Contains(out, "worker=3") {
		t.Fatalf("log output missing worker attribute: %q", out)
	}
}

// fullBoardFor places every piece with orientation derived from i so
// successive calls don't collide on identical empty-road placements.
func fullBoardFor(i int) ntmodel.Board {
	var b ntmodel.Board
	for pos := range b {
		b[pos] = &ntmodel.OrientedTile{Piece: pos, Side: 0, Orientation: (pos + i) % 4}
	}
	return b
}
