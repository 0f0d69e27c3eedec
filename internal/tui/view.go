package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/listkeeper/internal/ui"
)

func (m appModel) View() string {
	t := ui.Current()

	var sections []string
	sections = append(sections, m.headerView(), "")
	if m.ctrl.Len() == 0 && m.mode != modeMove {
		empty := t.Muted.Render("no items yet, press a to add one")
		sections = append(sections, lipgloss.NewStyle().Height(m.board.list.Height()).Render(empty))
	} else {
		sections = append(sections, m.board.list.View())
	}

	switch m.mode {
	case modeAdd:
		sections = append(sections, m.addView())
	case modeEdit:
		sections = append(sections, m.editView())
	case modeConfirm:
		sections = append(sections, m.confirmView())
	}

	sections = append(sections, m.bannerView(), m.helpView())
	return ui.PanelString(sections)
}

func (m appModel) headerView() string {
	t := ui.Current()
	items := m.ctrl.Items()
	decorated := 0
	for _, it := range items {
		if it.Decorated {
			decorated++
		}
	}
	h := fmt.Sprintf("%s   %s %d  %s %d",
		t.Title.Render("List"),
		t.Accent.Render(t.Icon), decorated,
		t.Accent.Render("Total"), len(items),
	)
	if m.mode == modeMove && m.drag != nil {
		h += "   " + t.Grabbed.Render(fmt.Sprintf("%s moving item %d", t.DropMarker, m.drag.move.From()+1))
	}
	return h
}

func (m appModel) boxStyle(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(ui.Current().Border).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(m.width-8, 20))
}

func (m appModel) addView() string {
	t := ui.Current()
	title := "Add new item"
	border := t.BorderColor
	switch valid, empty := m.inputValid(); {
	case empty:
		title += " " + t.Muted.Render("(at least 5 characters)")
	case valid:
		title += " " + t.Success.Render(t.SymOK)
		border = t.Success.GetForeground()
	default:
		title += " " + t.Error.Render("at least 5 characters required")
		border = t.Error.GetForeground()
	}
	return m.boxStyle(border).Render(title + "\n" + m.input.View())
}

func (m appModel) editView() string {
	t := ui.Current()
	title := "Edit item"
	border := t.BorderColor
	if m.editErr != "" {
		title += " " + t.Error.Render(m.editErr)
		border = t.Error.GetForeground()
	}
	return m.boxStyle(border).Render(title + "\n" + m.input.View())
}

func (m appModel) confirmView() string {
	t := ui.Current()
	text := ""
	if items := m.ctrl.Items(); m.confirmIndex < len(items) {
		text = ui.Truncate(ui.Sanitize(items[m.confirmIndex].Text), max(m.width-30, 10))
	}
	body := fmt.Sprintf("Delete %q?", text)

	btn := lipgloss.NewStyle().Padding(0, 1)
	active := btn.Inherit(t.Selected)
	confirm, cancel := btn.Render("Delete"), btn.Render("Cancel")
	if m.confirmFocus == focusConfirm {
		confirm = active.Render("Delete")
	} else {
		cancel = active.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, " ", cancel, "   ",
		t.Muted.Render("y/n  tab: focus  enter: select"))
	return m.boxStyle(t.Error.GetForeground()).Render(body + "\n" + controls)
}

func (m appModel) bannerView() string {
	if m.banner.text == "" {
		return ""
	}
	t := ui.Current()
	if m.banner.kind == bannerError {
		return t.Error.Render(m.banner.text)
	}
	return t.Success.Render(m.banner.text)
}

func (m appModel) helpView() string {
	if m.mode == modeMove {
		return m.help.View(m.moveKeys)
	}
	return strings.TrimRight(m.help.View(m.keys), "\n")
}
