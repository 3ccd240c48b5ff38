// Package viz renders trajectories and dense-output sweeps in the
// terminal.
package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Plot renders a series as an ASCII chart with a caption.
func Plot(series []float64, caption string) string {
	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// Header styles a section title.
func Header(s string) string { return headerStyle.Render(s) }

// Stat renders a labeled value row.
func Stat(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
