package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/Propel-2-Excel/point-system-frontend/internal/series"
)

func chartPoints() []series.Point {
	return []series.Point{
		{Label: "Sep 8", Date: "2025-09-08", Points: 15, Daily: 15, Net: 15, Source: series.SourceActivityFeed},
		{Label: "Sep 9", Date: "2025-09-09", Points: 12, Redeemed: 3, Net: -3, Redemptions: 1, Source: series.SourceActivityFeed},
		{Label: "Sep 10", Date: "2025-09-10", Points: 20, Daily: 8, Net: 8, Source: series.SourceActivityFeed},
	}
}

func TestRenderPointsChart(t *testing.T) {
	out := ansi.Strip(RenderPointsChart(chartPoints(), 80, 8, 2))
	if out == "" {
		t.Fatal("expected chart output")
	}
	if !strings.Contains(out, "Sep 8") {
		t.Error("chart missing first date label")
	}
	if !strings.Contains(out, "Sep 10") {
		t.Error("chart missing last date label")
	}
	if !strings.Contains(out, "▼") {
		t.Error("chart missing selection marker")
	}
}

func TestRenderPointsChartYAxisPadding(t *testing.T) {
	points := []series.Point{
		{Label: "Sep 8", Date: "2025-09-08", Points: 50},
		{Label: "Sep 9", Date: "2025-09-09", Points: 100},
	}
	out := ansi.Strip(RenderPointsChart(points, 80, 8, -1))
	// Top tick is max+10, bottom tick is min-10.
	if !strings.Contains(out, "110") {
		t.Errorf("y-axis missing padded maximum:\n%s", out)
	}
	if !strings.Contains(out, "40") {
		t.Errorf("y-axis missing padded minimum:\n%s", out)
	}
}

func TestRenderPointsChartEmpty(t *testing.T) {
	if out := RenderPointsChart(nil, 80, 8, -1); out != "" {
		t.Errorf("expected empty output for no points, got %q", out)
	}
}

func TestRenderPointsChartTinyTerminal(t *testing.T) {
	if out := RenderPointsChart(chartPoints(), 5, 1, 0); out != "" {
		t.Errorf("expected empty output for tiny terminal, got %q", out)
	}
}
