package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ------- styling helpers (Lip Gloss), rebuilt on SetTheme -------
var (
	TitleStyle    lipgloss.Style
	StepStyle     lipgloss.Style
	LabelStyle    lipgloss.Style
	SuccessStyle  lipgloss.Style
	PendingStyle  lipgloss.Style
	AccentStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	HelpStyle     lipgloss.Style
	FieldStyle    lipgloss.Style
	FocusedStyle  lipgloss.Style
)

func refreshStyles() {
	t := current
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Title)
	StepStyle = lipgloss.NewStyle().Foreground(t.Accent)
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Title)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	PendingStyle = lipgloss.NewStyle().Foreground(t.Pending)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	MutedStyle = lipgloss.NewStyle().Faint(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	HelpStyle = lipgloss.NewStyle().Faint(true)
	FieldStyle = lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.Muted).
		Padding(0, 1)
	FocusedStyle = FieldStyle.BorderForeground(t.Accent)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle.Render(current.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, ErrorStyle.Render(current.SymFail+" "+msg))
}
