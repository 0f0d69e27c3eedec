package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PanelString frames lines in the current theme's border.
func PanelString(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}

// Truncate shortens s to at most max display cells, marking the cut.
func Truncate(s string, max int) string {
	if max <= 3 || lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	for lipgloss.Width(string(r)) > max-3 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
