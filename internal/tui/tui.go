// Package tui is the interactive list: a Bubble Tea program that renders the
// controller's items and turns keys and mouse drags into list operations.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listkeeper/internal/controller"
)

// Run blocks until the user quits. Every mutation is persisted by the
// controller as it happens, so there is nothing to write back on exit.
func Run(ctrl *controller.Controller, opts Options) error {
	m := newAppModel(ctrl, opts)

	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, popts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
