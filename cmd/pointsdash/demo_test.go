package main

import (
	"context"
	"testing"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
	"github.com/Propel-2-Excel/point-system-frontend/internal/series"
)

func TestDemoProviderProducesConsistentState(t *testing.T) {
	state, err := newDemoProvider().Fetch(context.Background(), core.AccountConfig{ID: "demo"})
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if state.Status != core.StatusOK {
		t.Fatalf("status = %s, want OK", state.Status)
	}
	if len(state.Feed) == 0 {
		t.Fatal("demo feed should not be empty")
	}
	if state.TotalPoints == nil {
		t.Fatal("demo state missing total")
	}

	// The generated total must equal the feed's signed sum so the chart
	// needs no reconciliation shift.
	sum := 0
	for _, item := range state.Feed {
		sum += item.PointsChange
	}
	if sum != *state.TotalPoints {
		t.Errorf("feed sum = %d, total = %d, want equal", sum, *state.TotalPoints)
	}

	points := series.FromState(state)
	if len(points) == 0 {
		t.Fatal("demo state should produce chart points")
	}
	if last := points[len(points)-1].Points; last != *state.TotalPoints {
		t.Errorf("last chart point = %d, want total %d", last, *state.TotalPoints)
	}
}
