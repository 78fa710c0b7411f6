package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
)

// ─── Color Palette (Catppuccin Mocha) ────────────────────────────────────────

var (
	// Base tones
	colorMantle   = lipgloss.Color("#181825") // deeper bg
	colorSurface0 = lipgloss.Color("#313244") // card bg
	colorSurface1 = lipgloss.Color("#45475A") // lighter surface
	colorText     = lipgloss.Color("#CDD6F4") // primary text
	colorSubtext  = lipgloss.Color("#A6ADC8") // secondary text
	colorDim      = lipgloss.Color("#585B70") // muted, borders

	// Accents
	colorAccent   = lipgloss.Color("#CBA6F7") // mauve, primary accent
	colorBlue     = lipgloss.Color("#89B4FA") // section headers
	colorSapphire = lipgloss.Color("#74C7EC") // keys, secondary accent
	colorGreen    = lipgloss.Color("#A6E3A1") // OK / earnings
	colorYellow   = lipgloss.Color("#F9E2AF") // warning
	colorRed      = lipgloss.Color("#F38BA8") // error / redemptions
	colorPeach    = lipgloss.Color("#FAB387") // auth issues
	colorTeal     = lipgloss.Color("#94E2D5") // secondary highlight
	colorLavender = lipgloss.Color("#B4BEFE") // titles
)

// ─── Reusable Styles ────────────────────────────────────────────────────────

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLavender)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorSapphire).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	metricValueStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true)

	selectedDayStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	// Badge shown when the chart was built from the live activity feed.
	liveFeedBadgeStyle = lipgloss.NewStyle().
				Foreground(colorMantle).
				Background(colorGreen).
				Bold(true).
				Padding(0, 1)

	badgeAuthStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Bold(true)

	badgeErrStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)

// ─── Status Helpers ─────────────────────────────────────────────────────────

// StatusColor returns the accent color for a given status.
func StatusColor(s core.Status) lipgloss.Color {
	switch s {
	case core.StatusOK:
		return colorGreen
	case core.StatusAuth:
		return colorPeach
	case core.StatusError:
		return colorRed
	default:
		return colorDim
	}
}

// StatusIcon returns a compact icon for a status.
func StatusIcon(s core.Status) string {
	switch s {
	case core.StatusOK:
		return "●"
	case core.StatusAuth:
		return "◈"
	case core.StatusError:
		return "✗"
	default:
		return "·"
	}
}

// StatusBadge returns a styled badge string for the status.
func StatusBadge(s core.Status) string {
	switch s {
	case core.StatusOK:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Render("OK")
	case core.StatusAuth:
		return badgeAuthStyle.Render("AUTH")
	case core.StatusError:
		return badgeErrStyle.Render("ERR")
	default:
		return dimStyle.Render("…")
	}
}
