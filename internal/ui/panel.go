package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dieta/internal/model"
)

// ProgressBar renders a Unicode progress bar with a step count.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel frames lines with the current theme border.
func Panel(lines []string) string {
	border := lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.Muted).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Header is the "Passo N" line plus the screen title.
func Header(r model.Route) string {
	return StepStyle.Render(r.Step()) + "\n" + TitleStyle.Render(r.Title())
}
