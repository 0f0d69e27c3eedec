package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type bannerKind int

const (
	bannerSuccess bannerKind = iota
	bannerError
)

// banner is the transient status line. Every message schedules its own
// clear; a clear only lands if no newer message replaced it, so the last
// message written is the one on screen.
type banner struct {
	text string
	kind bannerKind
	seq  int
}

type clearBannerMsg struct{ seq int }

func (b banner) cleared(msg clearBannerMsg) banner {
	if msg.seq == b.seq {
		b.text = ""
	}
	return b
}

func (m *appModel) show(text string, kind bannerKind) tea.Cmd {
	m.banner.seq++
	m.banner.text = text
	m.banner.kind = kind
	if m.opts.MessageTimeout <= 0 {
		return nil
	}
	seq := m.banner.seq
	return tea.Tick(m.opts.MessageTimeout, func(time.Time) tea.Msg {
		return clearBannerMsg{seq: seq}
	})
}

func (m *appModel) succeed(text string) tea.Cmd { return m.show(text, bannerSuccess) }

func (m *appModel) failText(text string) tea.Cmd { return m.show(text, bannerError) }

func (m *appModel) fail(err error) tea.Cmd {
	m.log.Error("list operation failed", "err", err)
	return m.show("Error: "+err.Error(), bannerError)
}
