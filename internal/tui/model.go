package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Propel-2-Excel/point-system-frontend/internal/core"
	"github.com/Propel-2-Excel/point-system-frontend/internal/series"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// StateMsg carries a fresh dashboard snapshot from the engine.
type StateMsg core.DashboardState

type Model struct {
	state    core.DashboardState
	points   []series.Point
	selected int // index into points, driven by ←/→

	width  int
	height int

	animFrame  int  // monotonically increasing frame counter
	hasData    bool // true after the first StateMsg arrives
	refreshing bool // true when a manual refresh is in progress

	onRefresh func()
}

func NewModel() Model {
	return Model{selected: -1}
}

// SetOnRefresh sets a callback invoked when the user requests a manual refresh.
func (m *Model) SetOnRefresh(fn func()) {
	m.onRefresh = fn
}

func (m Model) Init() tea.Cmd { return tickCmd() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.animFrame++
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StateMsg:
		m.state = core.DashboardState(msg)
		m.hasData = true
		m.refreshing = false
		m.rebuildSeries()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "right", "l":
			if m.selected < len(m.points)-1 {
				m.selected++
			}
			return m, nil
		case "home", "g":
			if len(m.points) > 0 {
				m.selected = 0
			}
			return m, nil
		case "end", "G":
			if len(m.points) > 0 {
				m.selected = len(m.points) - 1
			}
			return m, nil
		case "r":
			if m.onRefresh != nil && !m.refreshing {
				m.refreshing = true
				m.onRefresh()
			}
			return m, nil
		}
	}

	return m, nil
}

// rebuildSeries derives the chart series from the latest state and keeps the
// day selection stable across refreshes, defaulting to the most recent day.
func (m *Model) rebuildSeries() {
	prevDate := ""
	if m.selected >= 0 && m.selected < len(m.points) {
		prevDate = m.points[m.selected].Date
	}

	m.points = series.FromState(m.state)
	if len(m.points) == 0 {
		m.selected = -1
		return
	}

	m.selected = len(m.points) - 1
	for i, p := range m.points {
		if p.Date == prevDate {
			m.selected = i
			break
		}
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n\n")

	if !m.hasData {
		sb.WriteString(m.renderLoading())
		return sb.String()
	}

	switch m.state.Status {
	case core.StatusAuth, core.StatusError:
		sb.WriteString(m.renderStatusPanel(m.state))
	default:
		if len(m.points) == 0 {
			sb.WriteString(m.renderEmptyState())
		} else {
			sb.WriteString(m.renderChartScreen(m.state))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter(m.state))
	return sb.String()
}

func (m Model) renderHeader() string {
	brand := headerBrandStyle.Render("pointsdash")
	title := headerStyle.Render("Points Activity")
	return "  " + brand + "  " + title
}

func (m Model) renderLoading() string {
	frame := spinnerFrames[m.animFrame%len(spinnerFrames)]
	return "  " + valueStyle.Render(frame) + " " + dimStyle.Render("Fetching points activity…")
}

func (m Model) renderStatusPanel(state core.DashboardState) string {
	msg := state.Message
	if msg == "" {
		msg = string(state.Status)
	}
	content := panelContent(
		"",
		"  "+StatusBadge(state.Status)+"  "+labelStyle.Render(msg),
	)
	return renderPanel(Panel{
		Title:   "Points Activity",
		Icon:    StatusIcon(state.Status),
		Content: content,
		Color:   StatusColor(state.Status),
	}, m.width-2, 6)
}

func (m Model) renderEmptyState() string {
	content := panelContent(
		"",
		"  "+labelStyle.Render("No activity yet."),
		"  "+dimStyle.Render("Earn points to see your progress here."),
	)
	return renderPanel(Panel{
		Title:   "Points Activity",
		Icon:    "📈",
		Content: content,
		Color:   colorSurface1,
	}, m.width-2, 6)
}

func (m Model) renderChartScreen(state core.DashboardState) string {
	chartH := m.height - 16
	if chartH < 5 {
		chartH = 5
	}
	if chartH > 14 {
		chartH = 14
	}

	chart := RenderPointsChart(m.points, m.width-2, chartH, m.selected)

	var detail string
	if m.selected >= 0 && m.selected < len(m.points) {
		detail = RenderDayDetail(m.points[m.selected])
	}

	spark := RenderDailyNetSparkline(m.points, sparklineWidth(m.width))
	if spark != "" {
		detail = detail + "\n\n  " + spark
	}

	detailPanel := renderPanel(Panel{
		Title:   "Day Detail",
		Icon:    "◆",
		Content: detail,
		Color:   colorSurface1,
	}, m.width-2, 10)

	total := metricValueStyle.Render(fmt.Sprintf("%d", state.Total()))
	summary := "  " + labelStyle.Render("Total points") + " " + total

	return chart + "\n" + summary + "\n\n" + detailPanel
}

func sparklineWidth(totalW int) int {
	w := totalW - 24
	if w > 40 {
		w = 40
	}
	if w < 4 {
		w = 4
	}
	return w
}

func (m Model) renderFooter(state core.DashboardState) string {
	help := "  " +
		helpKeyStyle.Render("←/→") + helpStyle.Render(" day  ") +
		helpKeyStyle.Render("r") + helpStyle.Render(" refresh  ") +
		helpKeyStyle.Render("q") + helpStyle.Render(" quit")

	status := ""
	if m.refreshing {
		status = dimStyle.Render(spinnerFrames[m.animFrame%len(spinnerFrames)] + " refreshing")
	} else if !state.Timestamp.IsZero() {
		status = dimStyle.Render("updated " + state.Timestamp.Format("15:04:05"))
	}

	gap := m.width - lipgloss.Width(help) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	return help + strings.Repeat(" ", gap) + status
}
