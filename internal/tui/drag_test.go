package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shown(m appModel) []string {
	out := make([]string, 0, len(m.board.list.Items()))
	for _, it := range m.board.list.Items() {
		out = append(out, it.(listItem).Text)
	}
	return out
}

func mouse(y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: 5, Y: listTop + y, Action: action, Button: button}
}

func TestPointerY_LandsOnHoveredRow(t *testing.T) {
	assert.Equal(t, 2.5, pointerY(2, 0))
	assert.Equal(t, 2.0, pointerY(2, 3))
	assert.Equal(t, 1.0, pointerY(1, 1))
}

func TestKeyboardMove_Down(t *testing.T) {
	m, ctrl, st := newTestModel(t, "Alpha item", "Bravo item", "Charlie item", "Delta item")

	m = press(m, "m")
	require.Equal(t, modeMove, m.mode)
	m = press(m, "j")
	m = press(m, "j")

	assert.Equal(t, []string{"Bravo item", "Charlie item", "Alpha item", "Delta item"}, shown(m),
		"preview follows the cursor")
	assert.Equal(t, []string{"Alpha item", "Bravo item", "Charlie item", "Delta item"}, itemTexts(ctrl.Items()),
		"nothing is committed before the drop")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBrowse, m.mode)
	want := []string{"Bravo item", "Charlie item", "Alpha item", "Delta item"}
	assert.Equal(t, want, itemTexts(ctrl.Items()))
	assert.Equal(t, want, itemTexts(st.Load()))
	assert.Equal(t, 2, m.board.list.Index())
	assert.Equal(t, "Order changed!", m.banner.text)
}

func TestKeyboardMove_Up(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item", "Charlie item", "Delta item")
	m.board.list.Select(3)

	m = press(m, "m")
	m = press(m, "k")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"Alpha item", "Bravo item", "Delta item", "Charlie item"}, itemTexts(ctrl.Items()))
}

func TestKeyboardMove_ClampsAtEdges(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item")

	m = press(m, "m")
	for range 5 {
		m = press(m, "j")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"Bravo item", "Alpha item"}, itemTexts(ctrl.Items()))
}

func TestKeyboardMove_DropInPlaceIsNoop(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item")

	m = press(m, "m")
	m = press(m, "j")
	m = press(m, "k")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"Alpha item", "Bravo item"}, itemTexts(ctrl.Items()))
	assert.Empty(t, m.banner.text)
}

func TestKeyboardMove_Cancel(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item", "Charlie item")

	m = press(m, "m")
	m = press(m, "j")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, m.drag)
	assert.Equal(t, []string{"Alpha item", "Bravo item", "Charlie item"}, itemTexts(ctrl.Items()))
	assert.Equal(t, []string{"Alpha item", "Bravo item", "Charlie item"}, shown(m))
	assert.Equal(t, 0, m.board.list.Index())
}

func TestMouseDrag(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item", "Charlie item", "Delta item")

	m, _ = send(m, mouse(0, tea.MouseActionPress, tea.MouseButtonLeft))
	require.Equal(t, modeMove, m.mode)
	require.NotNil(t, m.drag)
	assert.True(t, m.drag.mouse)

	m, _ = send(m, mouse(1, tea.MouseActionMotion, tea.MouseButtonLeft))
	m, _ = send(m, mouse(3, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.Equal(t, []string{"Bravo item", "Charlie item", "Delta item", "Alpha item"}, shown(m))

	m, _ = send(m, mouse(3, tea.MouseActionRelease, tea.MouseButtonNone))
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"Bravo item", "Charlie item", "Delta item", "Alpha item"}, itemTexts(ctrl.Items()))
}

func TestMouseDrag_BelowListClampsToLast(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item", "Charlie item")

	m, _ = send(m, mouse(1, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = send(m, mouse(15, tea.MouseActionMotion, tea.MouseButtonLeft))
	m, _ = send(m, mouse(15, tea.MouseActionRelease, tea.MouseButtonNone))

	assert.Equal(t, []string{"Alpha item", "Charlie item", "Bravo item"}, itemTexts(ctrl.Items()))
}

func TestMouseDrag_AboveListClampsToFirst(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Alpha item", "Bravo item", "Charlie item")

	m, _ = send(m, mouse(2, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = send(m, mouse(-3, tea.MouseActionMotion, tea.MouseButtonLeft))
	m, _ = send(m, mouse(-3, tea.MouseActionRelease, tea.MouseButtonNone))

	assert.Equal(t, []string{"Charlie item", "Alpha item", "Bravo item"}, itemTexts(ctrl.Items()))
}

func TestMouse_PressOutsideListIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, "Alpha item")

	m, _ = send(m, mouse(-2, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, modeBrowse, m.mode)
	m, _ = send(m, mouse(5, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, modeBrowse, m.mode)
}

func TestMouse_DisabledIgnoresEvents(t *testing.T) {
	m, _, _ := newTestModel(t, "Alpha item", "Bravo item")
	m.opts.Mouse = false

	m, _ = send(m, mouse(0, tea.MouseActionPress, tea.MouseButtonLeft))
	assert.Equal(t, modeBrowse, m.mode)
}

func TestMouse_WheelMovesCursor(t *testing.T) {
	m, _, _ := newTestModel(t, "Alpha item", "Bravo item")

	m, _ = send(m, mouse(0, tea.MouseActionPress, tea.MouseButtonWheelDown))
	assert.Equal(t, 1, m.board.list.Index())
	m, _ = send(m, mouse(0, tea.MouseActionPress, tea.MouseButtonWheelUp))
	assert.Equal(t, 0, m.board.list.Index())
}
