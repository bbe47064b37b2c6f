package testutil

import (
	"path/filepath"
	"testing"

	"joker-casino/internal/store"
)

// OpenTestStore opens a throwaway SQLite store in the test's temp dir.
// The file is removed with the temp dir when the test finishes.
func OpenTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}
