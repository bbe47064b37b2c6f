package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestCappedFileWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := newCappedFileWriter(path, 1)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	defer w.Close()

	if _, err := w.Write([]byte("one\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("two\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "one\ntwo\n" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestCappedFileWriterTruncatesAtCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := newCappedFileWriter(path, 1)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	defer w.Close()
	// Force the cap low instead of writing a megabyte.
	w.cap = 32

	if _, err := w.Write(bytes.Repeat([]byte("a"), 30)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("fresh line\n")); err != nil {
		t.Fatalf("write past cap: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "fresh line\n" {
		t.Fatalf("expected truncated file with only the new line, got %q", b)
	}
}

func TestCappedFileWriterReopensAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	w, err := newCappedFileWriter(path, 1)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := w.Write([]byte("after close\n")); err != nil {
		t.Fatalf("write after close must reopen: %v", err)
	}
	_ = w.Close()
	b, _ := os.ReadFile(path)
	if !bytes.Contains(b, []byte("after close")) {
		t.Fatalf("reopened write missing: %q", b)
	}
}
