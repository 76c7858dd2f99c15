package ntstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ntpanic/solver/internal/ntkerrors"
)

func TestWriteAndReadRunMetadataRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solutions_1.arrow")
	hash := []byte{0x01, 0x02, 0x03}

	if err := WriteRunMetadata(path, hash); err != nil {
		t.Fatalf("WriteRunMetadata: %v", err)
	}

	meta, err := ReadRunMetadata(path)
	if err != nil {
		t.Fatalf("ReadRunMetadata: %v", err)
	}
	if !meta.Matches(hash) {
		t.Fatalf("Matches(%x) = false, want true", hash)
	}
	if meta.Matches([]byte{0xff}) {
		t.Fatal("Matches(unrelated hash) = true, want false")
	}
}

func TestReadRunMetadataErrorsWhenSidecarMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solutions_1.arrow")

	_, err := ReadRunMetadata(path)
	var ioErr *ntkerrors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("ReadRunMetadata error = %v, want *IOError", err)
	}
}
