package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rhythmlab/internal/analysis"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	keyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func spinner(frame int) string {
	return spinnerFrames[frame%len(spinnerFrames)]
}

// ProgressBar renders percent (0-100) as a bar of the given width, colored
// by how far along it is.
func ProgressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case percent > 80:
		return green.Render(bar)
	case percent > 40:
		return yellow.Render(bar)
	default:
		return red.Render(bar)
	}
}

// ScoreStyle colors a balance score from green (perfect) to red (poor).
func ScoreStyle(s analysis.Score) lipgloss.Style {
	switch s {
	case analysis.Perfect:
		return green.Bold(true)
	case analysis.Excellent:
		return green
	case analysis.Good:
		return cyan
	case analysis.Fair:
		return yellow
	default:
		return red
	}
}

// StepLine draws a cycle as onset and rest glyphs.
func StepLine(steps []bool) string {
	var b strings.Builder
	for _, on := range steps {
		if on {
			b.WriteString(white.Render("●"))
		} else {
			b.WriteString(dimmer.Render("·"))
		}
	}
	return b.String()
}

func separator(width int) string {
	mid := width / 2
	return dim.Render(strings.Repeat("─", max(0, mid-3)) + " ◆ " + strings.Repeat("─", max(0, width-mid-3)))
}
