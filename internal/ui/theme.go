package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box border.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	Border                                        lipgloss.Border
	SymDone, SymPending, SymCursor, SymFail       string
	DropClosed, DropOpen                          string
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), // bright magenta
			Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			Border:  lipgloss.RoundedBorder(),
			SymDone: "✔", SymPending: "•", SymCursor: "▸", SymFail: "✖",
			DropClosed: "▾", DropOpen: "▴",
		}
	case "mono":
		none := lipgloss.NoColor{}
		current = Theme{
			Name:  "mono",
			Title: none, Muted: none, Accent: none, Success: none, Error: none, Pending: none,
			Border:  lipgloss.ASCIIBorder(),
			SymDone: "x", SymPending: "-", SymCursor: ">", SymFail: "!",
			DropClosed: "v", DropOpen: "^",
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: lipgloss.Color("15"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			Border:  lipgloss.NormalBorder(),
			SymDone: "✔", SymPending: "•", SymCursor: ">", SymFail: "✖",
			DropClosed: "▾", DropOpen: "▴",
		}
	}
	refreshStyles()
}

// Expose what renderers need
func Current() Theme { return current }
