package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pointerY maps a hovered row to the pointer coordinate fed to the move. A
// terminal cell has no halves, so a row below the grabbed item counts as its
// lower half (drop after it) and any other row as its upper half (drop
// before it). Either way the item lands on the hovered row.
func pointerY(hover, from int) float64 {
	y := float64(hover * rowHeight)
	if hover > from {
		y += rowHeight / 2.0
	}
	return y
}

func (m *appModel) beginMove(i int, mouse bool) tea.Cmd {
	mv, err := m.ctrl.BeginMove(i)
	if err != nil {
		m.ignore(err)
		return nil
	}
	m.drag = &dragState{move: mv, hover: i, mouse: mouse}
	m.mode = modeMove
	m.retarget(i)
	return nil
}

// retarget points the move at hover and previews the result.
func (m *appModel) retarget(hover int) {
	if m.drag == nil {
		return
	}
	n := m.ctrl.Len()
	hover = min(max(hover, 0), n-1)
	m.drag.hover = hover
	from := m.drag.move.From()
	m.drag.move.UpdateTarget(pointerY(hover, from), m.board.layout())
	if to, ok := m.drag.move.Target(); ok {
		m.board.preview(from, to)
	}
}

func (m *appModel) dropMove() tea.Cmd {
	d := m.drag
	m.drag = nil
	m.mode = modeBrowse
	if d == nil {
		return nil
	}
	to, resolved := d.move.Target()
	moved, err := d.move.Commit()
	if err != nil {
		return m.fail(err)
	}
	if !moved || !resolved {
		m.board.Render(m.ctrl.Items())
		m.board.list.Select(d.move.From())
		return nil
	}
	m.board.list.Select(to)
	return m.succeed("Order changed!")
}

func (m *appModel) cancelMove() {
	d := m.drag
	m.drag = nil
	m.mode = modeBrowse
	if d == nil {
		return
	}
	d.move.Cancel()
	m.board.Render(m.ctrl.Items())
	m.board.list.Select(d.move.From())
}

func (m appModel) updateMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag == nil {
		m.mode = modeBrowse
		return m, nil
	}
	switch {
	case key.Matches(msg, m.moveKeys.Up):
		m.retarget(m.drag.hover - 1)
	case key.Matches(msg, m.moveKeys.Down):
		m.retarget(m.drag.hover + 1)
	case key.Matches(msg, m.moveKeys.Drop):
		return m, m.dropMove()
	case key.Matches(msg, m.moveKeys.Cancel):
		m.cancelMove()
	}
	return m, nil
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse {
		return m, nil
	}
	row := msg.Y - listTop

	switch msg.Action {
	case tea.MouseActionPress:
		if m.mode != modeBrowse {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.board.list.CursorUp()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.board.list.CursorDown()
			return m, nil
		case tea.MouseButtonLeft:
			i, ok := m.board.rowAt(row)
			if !ok {
				return m, nil
			}
			m.board.list.Select(i)
			return m, m.beginMove(i, true)
		}
	case tea.MouseActionMotion:
		if m.mode != modeMove || m.drag == nil || !m.drag.mouse {
			return m, nil
		}
		row = min(max(row, -1), m.board.list.Paginator.PerPage)
		m.retarget(m.board.pageStart() + row/rowHeight)
	case tea.MouseActionRelease:
		if m.mode == modeMove && m.drag != nil && m.drag.mouse {
			return m, m.dropMove()
		}
	}
	return m, nil
}
