package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Propel-2-Excel/point-system-frontend/internal/series"
)

// yDomainPad widens the y-axis beyond the data so the line never hugs the
// panel edges.
const yDomainPad = 10

var brailleDots = [4][2]rune{
	{0x01, 0x08}, // top
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80}, // bottom
}

type brailleCanvas struct {
	cw, ch int    // character dimensions
	pw, ph int    // pixel dimensions (cw*2, ch*4)
	grid   []bool // flat [ph*pw]
}

func newBrailleCanvas(cw, ch int) *brailleCanvas {
	pw, ph := cw*2, ch*4
	return &brailleCanvas{cw: cw, ch: ch, pw: pw, ph: ph, grid: make([]bool, pw*ph)}
}

func (c *brailleCanvas) set(px, py int) {
	if px >= 0 && px < c.pw && py >= 0 && py < c.ph {
		c.grid[py*c.pw+px] = true
	}
}

func (c *brailleCanvas) drawLine(x0, y0, x1, y1 int) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	steps := math.Abs(dx)
	if math.Abs(dy) > steps {
		steps = math.Abs(dy)
	}
	if steps == 0 {
		c.set(x0, y0)
		return
	}
	xInc := dx / steps
	yInc := dy / steps
	x, y := float64(x0), float64(y0)
	for i := 0; i <= int(steps); i++ {
		px := int(math.Round(x))
		py := int(math.Round(y))
		c.set(px, py)
		c.set(px, py-1)
		c.set(px, py+1)
		x += xInc
		y += yInc
	}
}

func (c *brailleCanvas) render(color lipgloss.Color) []string {
	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, c.ch)
	for cy := 0; cy < c.ch; cy++ {
		var sb strings.Builder
		for cx := 0; cx < c.cw; cx++ {
			pattern := rune(0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if c.grid[(cy*4+dy)*c.pw+cx*2+dx] {
						pattern |= brailleDots[dy][dx]
					}
				}
			}
			if pattern == 0x2800 {
				sb.WriteRune(' ')
			} else {
				sb.WriteString(style.Render(string(pattern)))
			}
		}
		lines[cy] = sb.String()
	}
	return lines
}

// RenderPointsChart draws the cumulative points line across the charted days,
// with a y-axis padded ten points past the data's extremes and short date
// labels under the x-axis. The selected day is marked above the plot.
func RenderPointsChart(points []series.Point, w, h int, selected int) string {
	if len(points) == 0 || w < 20 || h < 3 {
		return ""
	}

	minY, maxY := points[0].Points, points[0].Points
	for _, p := range points {
		if p.Points < minY {
			minY = p.Points
		}
		if p.Points > maxY {
			maxY = p.Points
		}
	}
	lo := float64(minY - yDomainPad)
	hi := float64(maxY + yDomainPad)

	yAxisW := 8
	plotW := w - yAxisW - 4
	if plotW < 20 {
		plotW = 20
	}

	canvas := newBrailleCanvas(plotW, h)

	xOf := func(i int) int {
		if len(points) == 1 {
			return canvas.pw / 2
		}
		return int(float64(i) / float64(len(points)-1) * float64(canvas.pw-1))
	}
	yOf := func(v int) int {
		py := (canvas.ph - 1) - int((float64(v)-lo)/(hi-lo)*float64(canvas.ph-1))
		if py < 0 {
			py = 0
		}
		if py >= canvas.ph {
			py = canvas.ph - 1
		}
		return py
	}

	prevPX, prevPY := 0, 0
	for i, p := range points {
		px, py := xOf(i), yOf(p.Points)
		canvas.set(px, py)
		if i > 0 {
			canvas.drawLine(prevPX, prevPY, px, py)
		}
		prevPX, prevPY = px, py
	}

	plotLines := canvas.render(colorAccent)

	var sb strings.Builder

	// Selection marker row above the plot.
	if selected >= 0 && selected < len(points) {
		marker := make([]byte, plotW)
		for i := range marker {
			marker[i] = ' '
		}
		mx := xOf(selected) / 2
		if mx >= plotW {
			mx = plotW - 1
		}
		marker[mx] = 'v'
		line := strings.Replace(string(marker), "v", "▼", 1)
		sb.WriteString(fmt.Sprintf("  %*s  %s\n", yAxisW-2, "", selectedDayStyle.Render(line)))
	}

	numTicks := 5
	if h < 6 {
		numTicks = 3
	}
	tickRows := make(map[int]float64, numTicks)
	for t := 0; t < numTicks; t++ {
		row := t * (h - 1) / (numTicks - 1)
		tickRows[row] = hi - (hi-lo)*float64(t)/float64(numTicks-1)
	}

	axisStyle := lipgloss.NewStyle().Foreground(colorSurface1)
	for row := 0; row < h; row++ {
		label := ""
		if val, ok := tickRows[row]; ok {
			label = fmt.Sprintf("%.0f", val)
		}
		sb.WriteString(fmt.Sprintf("  %*s %s%s\n",
			yAxisW-2, dimStyle.Render(label),
			axisStyle.Render("┤"),
			plotLines[row]))
	}

	sb.WriteString(fmt.Sprintf("  %*s %s%s\n", yAxisW-2, "",
		axisStyle.Render("└"),
		axisStyle.Render(strings.Repeat("─", plotW))))

	sb.WriteString(fmt.Sprintf("  %*s  %s\n", yAxisW-2, "", renderDateAxis(points, plotW, selected)))

	return sb.String()
}

func renderDateAxis(points []series.Point, plotW, selected int) string {
	numLabels := 5
	if len(points) < numLabels {
		numLabels = len(points)
	}
	if numLabels == 0 {
		return ""
	}

	dateLine := make([]byte, plotW)
	for i := range dateLine {
		dateLine[i] = ' '
	}

	var selStart, selEnd int
	for i := 0; i < numLabels; i++ {
		di := 0
		if numLabels > 1 {
			di = i * (len(points) - 1) / (numLabels - 1)
		}
		label := points[di].Label
		x := 0
		if len(points) > 1 {
			x = int(float64(di) / float64(len(points)-1) * float64(plotW-1))
		}
		start := x - len(label)/2
		if start < 0 {
			start = 0
		}
		if start+len(label) > plotW {
			start = plotW - len(label)
		}
		if start < 0 {
			start = 0
		}
		for j := 0; j < len(label) && start+j < plotW; j++ {
			dateLine[start+j] = label[j]
		}
		if di == selected {
			selStart, selEnd = start, start+len(label)
		}
	}

	line := string(dateLine)
	if selEnd > selStart {
		return dimStyle.Render(line[:selStart]) +
			selectedDayStyle.Render(line[selStart:selEnd]) +
			dimStyle.Render(line[selEnd:])
	}
	return dimStyle.Render(line)
}
