package testsupport

import (
	"path/filepath"
	"testing"

	"slipstream/internal/library"
)

// MustOpenStore opens a throwaway replay index for tests and registers
// cleanup.
func MustOpenStore(t testing.TB) *library.Store {
	t.Helper()

	store, err := library.Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
