package snapshotfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

func TestFetch_ValidSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	content := `{
  "total_points": 12,
  "feed": [
    {"timestamp": "2025-09-08T10:00:00Z", "type": "activity", "points_change": 10},
    {"timestamp": "2025-09-09T09:00:00Z", "type": "redemption", "points_change": -3}
  ]
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := New().Fetch(context.Background(), core.AccountConfig{ID: "offline", SnapshotPath: path})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if state.Status != core.StatusOK {
		t.Fatalf("status = %s, want OK (%s)", state.Status, state.Message)
	}
	if state.Total() != 12 {
		t.Errorf("total = %d, want 12", state.Total())
	}
	if len(state.Feed) != 2 {
		t.Errorf("feed items = %d, want 2", len(state.Feed))
	}
}

func TestFetch_MissingFile(t *testing.T) {
	state, err := New().Fetch(context.Background(), core.AccountConfig{ID: "offline", SnapshotPath: "/nonexistent/snapshot.json"})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if state.Status != core.StatusError {
		t.Errorf("status = %s, want ERROR", state.Status)
	}
}

func TestFetch_NoPathConfigured(t *testing.T) {
	state, err := New().Fetch(context.Background(), core.AccountConfig{ID: "offline"})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if state.Status != core.StatusError {
		t.Errorf("status = %s, want ERROR", state.Status)
	}
}

func TestFetch_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := New().Fetch(context.Background(), core.AccountConfig{ID: "offline", SnapshotPath: path})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if state.Status != core.StatusError {
		t.Errorf("status = %s, want ERROR", state.Status)
	}
}
