package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/Propel-2-Excel/point-system-frontend/internal/series"
)

// RenderDayDetail renders the tooltip-style breakdown for one charted day.
// The cumulative total is always shown; the per-day lines appear only when
// they carry information: earnings and redemptions when nonzero, net only
// when redemptions make it differ from the day's earnings. Width clipping is
// left to the enclosing panel.
func RenderDayDetail(p series.Point) string {
	var lines []string

	title := selectedDayStyle.Render(p.Label)
	if p.Source == series.SourceActivityFeed {
		title += "  " + liveFeedBadgeStyle.Render("LIVE FEED")
	}
	lines = append(lines, title)
	lines = append(lines, "")

	lines = append(lines, detailLine("Points", fmt.Sprintf("%d", p.Points), colorText))
	if p.Daily > 0 {
		lines = append(lines, detailLine("Daily", fmt.Sprintf("+%d", p.Daily), colorGreen))
	}
	if p.Redeemed > 0 {
		lines = append(lines, detailLine("Redeemed", fmt.Sprintf("-%d", p.Redeemed), colorRed))
	}
	if p.Net != p.Daily {
		netStr := fmt.Sprintf("%+d", p.Net)
		netColor := colorGreen
		if p.Net < 0 {
			netColor = colorRed
		}
		lines = append(lines, detailLine("Net", netStr, netColor))
	}
	if p.Redemptions > 0 {
		noun := "redemptions"
		if p.Redemptions == 1 {
			noun = "redemption"
		}
		lines = append(lines, detailLine(noun, fmt.Sprintf("%d", p.Redemptions), colorSubtext))
	}

	return strings.Join(lines, "\n")
}

func detailLine(label, value string, color lipgloss.Color) string {
	return fmt.Sprintf("  %s %s",
		labelStyle.Width(12).Render(label),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(value))
}

// RenderDailyNetSparkline renders a compact sparkline of each day's net
// change, for the footer of the detail panel.
func RenderDailyNetSparkline(points []series.Point, w int) string {
	if len(points) < 2 || w < 4 {
		return ""
	}

	// Sparkline heights must be non-negative, so shift by the minimum net.
	minNet := points[0].Net
	for _, p := range points {
		if p.Net < minNet {
			minNet = p.Net
		}
	}

	sl := sparkline.New(w, 1, sparkline.WithStyle(lipgloss.NewStyle().Foreground(colorTeal)))
	for _, p := range points {
		sl.Push(float64(p.Net - minNet))
	}
	sl.Draw()

	return dimStyle.Render("daily net ") + sl.View()
}
