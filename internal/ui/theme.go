package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, glyphs and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Selected, Grabbed lipgloss.Style
	Border                                                 lipgloss.Border
	BorderColor                                            lipgloss.TerminalColor

	Handle, Icon, Cursor, DropMarker, SymOK, SymFail string
}

var current = build("classic", true)

// SetTheme selects a theme by name. color=false strips every color, which is
// what non-TTY output wants.
func SetTheme(name string, color bool) {
	current = build(name, color)
}

// Current exposes what renderers need.
func Current() Theme { return current }

func build(name string, color bool) Theme {
	name = strings.ToLower(strings.TrimSpace(name))
	if !color {
		name = "mono"
	}
	switch name {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Grabbed:     lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("14")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			Handle:      "≡", Icon: "◆", Cursor: "▶ ", DropMarker: "━━▶",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain, Success: plain, Error: plain,
			Selected: plain.Bold(true), Grabbed: plain.Reverse(true),
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			Handle:      "=", Icon: "*", Cursor: "> ", DropMarker: "-->",
			SymOK: "ok", SymFail: "x",
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Grabbed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			Handle:      "≡", Icon: "◆", Cursor: "> ", DropMarker: "──▶",
			SymOK: "✔", SymFail: "✖",
		}
	}
}
