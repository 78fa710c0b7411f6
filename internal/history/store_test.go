package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenStore error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	store.now = func() time.Time {
		return time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	}
	return store
}

func TestRecordAndQueryDays(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []core.TimelineRow{
		{Date: "2025-09-10", PointsEarned: 20, PointsRedeemed: 5, RedemptionsCount: 1},
		{Date: "2025-09-08", PointsEarned: 10},
	}
	if err := store.RecordDays(ctx, "propel", rows); err != nil {
		t.Fatalf("RecordDays error: %v", err)
	}

	got, err := store.TimelineSince(ctx, "propel", 30)
	if err != nil {
		t.Fatalf("TimelineSince error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rows count = %d, want 2", len(got))
	}
	if got[0].Date != "2025-09-08" || got[1].Date != "2025-09-10" {
		t.Errorf("rows not sorted ascending: %+v", got)
	}
	if got[1].PointsEarned != 20 || got[1].PointsRedeemed != 5 || got[1].RedemptionsCount != 1 {
		t.Errorf("row values = %+v, want earned 20 redeemed 5 count 1", got[1])
	}
}

func TestRecordDays_UpsertsSameDay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.RecordDays(ctx, "propel", []core.TimelineRow{{Date: "2025-09-10", PointsEarned: 10}}); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordDays(ctx, "propel", []core.TimelineRow{{Date: "2025-09-10", PointsEarned: 25, PointsRedeemed: 3, RedemptionsCount: 1}}); err != nil {
		t.Fatal(err)
	}

	got, err := store.TimelineSince(ctx, "propel", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("rows count = %d, want 1 (upsert)", len(got))
	}
	if got[0].PointsEarned != 25 || got[0].PointsRedeemed != 3 {
		t.Errorf("row = %+v, want latest values", got[0])
	}
}

func TestTimelineSince_CutoffAndAccountScoping(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rows := []core.TimelineRow{
		{Date: "2025-07-01", PointsEarned: 5},  // outside 30-day window
		{Date: "2025-09-01", PointsEarned: 10}, // inside
	}
	if err := store.RecordDays(ctx, "propel", rows); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordDays(ctx, "other", []core.TimelineRow{{Date: "2025-09-05", PointsEarned: 99}}); err != nil {
		t.Fatal(err)
	}

	got, err := store.TimelineSince(ctx, "propel", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("rows count = %d, want 1", len(got))
	}
	if got[0].Date != "2025-09-01" {
		t.Errorf("row date = %s, want 2025-09-01", got[0].Date)
	}
}

func TestRecordDays_SkipsEmptyInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.RecordDays(ctx, "propel", nil); err != nil {
		t.Fatalf("RecordDays(nil) error: %v", err)
	}
	if err := store.RecordDays(ctx, "propel", []core.TimelineRow{{Date: ""}}); err != nil {
		t.Fatalf("RecordDays(blank date) error: %v", err)
	}

	got, err := store.TimelineSince(ctx, "propel", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("rows count = %d, want 0", len(got))
	}
}
