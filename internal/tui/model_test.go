package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

func testState() core.DashboardState {
	return core.DashboardState{
		ProviderID:  "propel",
		AccountID:   "propel",
		Status:      core.StatusOK,
		TotalPoints: core.IntPtr(12),
		Feed: []core.ActivityFeedItem{
			{Timestamp: "2025-09-08T10:00:00Z", Type: "activity", PointsChange: 10},
			{Timestamp: "2025-09-08T14:30:00Z", Type: "activity", PointsChange: 5},
			{Timestamp: "2025-09-09T09:00:00Z", Type: "redemption", PointsChange: -3},
		},
	}
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 32})
	return updated.(Model)
}

func TestViewShowsLoadingBeforeFirstState(t *testing.T) {
	m := sized(NewModel())
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Fetching points activity") {
		t.Errorf("expected loading placeholder, got:\n%s", out)
	}
}

func TestStateMsgBuildsSeries(t *testing.T) {
	m := sized(NewModel())
	updated, _ := m.Update(StateMsg(testState()))
	m = updated.(Model)

	if !m.hasData {
		t.Fatal("hasData should be set after StateMsg")
	}
	if len(m.points) != 2 {
		t.Fatalf("points = %d, want 2", len(m.points))
	}
	if m.selected != 1 {
		t.Errorf("selected = %d, want most recent day", m.selected)
	}

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Total points") {
		t.Errorf("view missing total summary:\n%s", out)
	}
	if !strings.Contains(out, "Sep 9") {
		t.Errorf("view missing date labels:\n%s", out)
	}
}

func TestDaySelectionKeys(t *testing.T) {
	m := sized(NewModel())
	updated, _ := m.Update(StateMsg(testState()))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	if m.selected != 0 {
		t.Errorf("selected after left = %d, want 0", m.selected)
	}

	// Already at the first day, stays put.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	if m.selected != 0 {
		t.Errorf("selected after second left = %d, want 0", m.selected)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	if m.selected != 1 {
		t.Errorf("selected after right = %d, want 1", m.selected)
	}
}

func TestSelectionSurvivesRefresh(t *testing.T) {
	m := sized(NewModel())
	updated, _ := m.Update(StateMsg(testState()))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)

	// A refresh adds a newer day; the selection stays on the same date.
	state := testState()
	state.Feed = append(state.Feed, core.ActivityFeedItem{
		Timestamp: "2025-09-10T08:00:00Z", Type: "activity", PointsChange: 4,
	})
	state.TotalPoints = core.IntPtr(16)
	updated, _ = m.Update(StateMsg(state))
	m = updated.(Model)

	if len(m.points) != 3 {
		t.Fatalf("points = %d, want 3", len(m.points))
	}
	if m.points[m.selected].Date != "2025-09-08" {
		t.Errorf("selected date = %s, want 2025-09-08", m.points[m.selected].Date)
	}
}

func TestViewEmptyState(t *testing.T) {
	m := sized(NewModel())
	state := core.DashboardState{ProviderID: "propel", AccountID: "propel", Status: core.StatusOK}
	updated, _ := m.Update(StateMsg(state))
	m = updated.(Model)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "No activity yet") {
		t.Errorf("expected empty-state panel, got:\n%s", out)
	}
}

func TestViewAuthError(t *testing.T) {
	m := sized(NewModel())
	state := core.DashboardState{
		ProviderID: "propel",
		AccountID:  "propel",
		Status:     core.StatusAuth,
		Message:    "env var PROPEL_API_TOKEN not set",
	}
	updated, _ := m.Update(StateMsg(state))
	m = updated.(Model)

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "PROPEL_API_TOKEN") {
		t.Errorf("expected auth message in view, got:\n%s", out)
	}
}

func TestRefreshKeyTriggersCallback(t *testing.T) {
	m := sized(NewModel())
	updated, _ := m.Update(StateMsg(testState()))
	m = updated.(Model)

	called := false
	m.SetOnRefresh(func() { called = true })

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if !called {
		t.Error("refresh callback not invoked")
	}
	if !m.refreshing {
		t.Error("refreshing flag not set")
	}
}

func TestQuitKeys(t *testing.T) {
	m := sized(NewModel())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
