// Package viz renders computed trajectories in the terminal, either as a
// static plot or as a live point-by-point playback.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	graphWidth  = 80
	graphHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

// Plot renders the solution as an ASCII graph captioned with the problem
// definition.
func Plot(solution []float64, expression string, h float64) string {
	caption := fmt.Sprintf("dy/dt = %s  (h = %g, n = %d)", expression, h, len(solution)-1)
	return asciigraph.Plot(solution,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(caption),
	)
}

// Summary renders a styled panel describing the solved problem.
func Summary(expression string, tStart, tEnd, y0, h float64, n int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("forward euler") + "\n")

	rows := []struct {
		label, value string
	}{
		{"expression", fmt.Sprintf("dy/dt = %s", expression)},
		{"domain", fmt.Sprintf("[%g, %g]", tStart, tEnd)},
		{"y(start)", fmt.Sprintf("%g", y0)},
		{"steps", fmt.Sprintf("%d", n)},
		{"step size", fmt.Sprintf("%g", h)},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label) + valueStyle.Render(r.value) + "\n")
	}
	return b.String()
}
