package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listkeeper/internal/controller"
	"github.com/idilsaglam/listkeeper/internal/model"
	"github.com/idilsaglam/listkeeper/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	model.Item
	grabbed bool
}

func (i listItem) FilterValue() string { return i.Text }

// Custom delegate: one line per item, drag handle first.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return rowHeight }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	icon := " "
	if it.Decorated {
		icon = t.Accent.Render(t.Icon)
	}
	text := ui.Truncate(ui.Sanitize(it.Text), max(m.Width()-8, 10))

	prefix := "  "
	handle := t.Muted.Render(t.Handle)
	switch {
	case it.grabbed:
		prefix = t.Grabbed.Render(t.Cursor)
		handle = t.Grabbed.Render(t.Handle)
		text = t.Grabbed.Render(text)
	case index == m.Index():
		prefix = t.Selected.Render(t.Cursor)
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, handle, icon, text)
}

// board is the controller's View: it holds the bubbles list the program
// draws. It lives behind a pointer so the controller and the (value-copied)
// Bubble Tea model share it.
type board struct {
	list  list.Model
	items []model.Item
}

func newBoard(items []model.Item) *board {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	b := &board{list: l}
	b.Render(items)
	return b
}

// Render shows items in sequence order, keeping the cursor in range.
func (b *board) Render(items []model.Item) {
	b.items = items
	b.show(items, -1)
}

// preview shows the committed list with the item at from moved to to. The
// committed list itself is untouched.
func (b *board) preview(from, to int) {
	if from < 0 || from >= len(b.items) || to < 0 || to >= len(b.items) {
		b.show(b.items, -1)
		return
	}
	moved := b.items[from]
	rest := make([]model.Item, 0, len(b.items))
	rest = append(rest, b.items[:from]...)
	rest = append(rest, b.items[from+1:]...)
	out := make([]model.Item, 0, len(b.items))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	b.show(out, to)
	b.list.Select(to)
}

func (b *board) show(items []model.Item, grabbed int) {
	li := make([]list.Item, 0, len(items))
	for i, it := range items {
		li = append(li, listItem{Item: it, grabbed: i == grabbed})
	}
	idx := b.list.Index()
	b.list.SetItems(li)
	if idx >= len(li) {
		idx = len(li) - 1
	}
	if idx >= 0 {
		b.list.Select(idx)
	}
}

// layout reports one controller.Box per committed item, in list rows.
func (b *board) layout() []controller.Box {
	out := make([]controller.Box, len(b.items))
	for i := range out {
		out[i] = controller.Box{Top: float64(i * rowHeight), Height: rowHeight}
	}
	return out
}

// pageStart is the index of the first item on the visible page.
func (b *board) pageStart() int {
	start, _ := b.list.Paginator.GetSliceBounds(len(b.list.Items()))
	return start
}

// rowAt maps a row inside the list area to an item index.
func (b *board) rowAt(row int) (int, bool) {
	if row < 0 {
		return 0, false
	}
	start, end := b.list.Paginator.GetSliceBounds(len(b.list.Items()))
	i := start + row/rowHeight
	if i >= end {
		return 0, false
	}
	return i, true
}
