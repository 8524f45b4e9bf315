package repo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/wastra-labs/wastra/internal/api"
	"github.com/wastra-labs/wastra/internal/db"
)

// testStore creates a temporary local store.
func testStore(t *testing.T) *db.DB {
	t.Helper()

	store, err := db.New(db.DefaultConfig(filepath.Join(t.TempDir(), "test.db")))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// testClient starts a fake API server and returns a client against it.
func testClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, "test-token", 0)
}

// writeList writes a {"data": ...} collection envelope.
func writeList(t *testing.T, w http.ResponseWriter, items any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"data": items}); err != nil {
		t.Errorf("encode response: %v", err)
	}
}
