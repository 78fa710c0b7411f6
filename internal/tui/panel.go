package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Panel struct {
	Title   string         // displayed in the top border
	Icon    string         // emoji icon before title
	Content string         // pre-rendered body text
	Color   lipgloss.Color // accent color for the border
}

func renderPanel(p Panel, w, h int) string {
	if w < 6 {
		w = 6
	}
	if h < 3 {
		h = 3
	}
	innerW := w - 4 // 2 border + 2 padding

	titleStr := ""
	if p.Icon != "" {
		titleStr = p.Icon + " "
	}
	titleStr += p.Title

	borderColor := p.Color
	if borderColor == "" {
		borderColor = colorSurface1
	}
	bStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleRendered := lipgloss.NewStyle().Bold(true).Foreground(borderColor).Render(titleStr)
	titleW := lipgloss.Width(titleRendered)

	topLeft := bStyle.Render("┌─ ")
	remaining := w - lipgloss.Width(topLeft) - titleW - 2
	if remaining < 1 {
		remaining = 1
	}
	topRight := bStyle.Render(" " + strings.Repeat("─", remaining) + "┐")
	topLine := topLeft + titleRendered + topRight

	contentLines := strings.Split(p.Content, "\n")
	for i, line := range contentLines {
		if lipgloss.Width(line) > innerW {
			contentLines[i] = ansi.Cut(line, 0, innerW-1) + "…"
		}
	}

	bodyH := h - 2
	if bodyH < 1 {
		bodyH = 1
	}
	for len(contentLines) < bodyH {
		contentLines = append(contentLines, "")
	}
	if len(contentLines) > bodyH {
		contentLines = contentLines[:bodyH]
	}

	var bodyLines []string
	for _, line := range contentLines {
		pad := innerW - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		bodyLines = append(bodyLines,
			bStyle.Render("│")+" "+line+strings.Repeat(" ", pad)+" "+bStyle.Render("│"))
	}

	bottomLine := bStyle.Render("└" + strings.Repeat("─", w-2) + "┘")

	return topLine + "\n" + strings.Join(bodyLines, "\n") + "\n" + bottomLine
}

func panelContent(lines ...string) string {
	return strings.Join(lines, "\n")
}
