package tui

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/listkeeper/internal/controller"
	"github.com/idilsaglam/listkeeper/internal/model"
)

const (
	rowHeight = 1

	// Lines above the first list row: panel border, header, blank.
	listTop = 3
	// Panel border, header, blank, banner, help, panel border.
	chromeLines = 6
	// Lines the add input or the edit modal take below the list.
	inputLines = 4
)

// Options tune the interactive list.
type Options struct {
	// MessageTimeout is how long a banner stays up. Zero keeps it until the
	// next one.
	MessageTimeout time.Duration
	Mouse          bool
	Logger         *slog.Logger
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirm
	modeMove
)

type confirmFocus int

const (
	focusConfirm confirmFocus = iota
	focusCancel
)

// dragState is the TUI side of a controller.Move.
type dragState struct {
	move  *controller.Move
	hover int  // row the pointer is over, in committed-list coordinates
	mouse bool // started by a mouse press
}

type appModel struct {
	ctrl  *controller.Controller
	board *board
	opts  Options
	log   *slog.Logger

	keys     keyMap
	moveKeys moveKeys
	help     help.Model

	mode  mode
	input textinput.Model

	editErr      string
	confirmIndex int
	confirmFocus confirmFocus
	drag         *dragState

	banner banner

	width, height int
}

func newAppModel(ctrl *controller.Controller, opts Options) appModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	b := newBoard(ctrl.Items())
	ctrl.SetView(b)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := appModel{
		ctrl:     ctrl,
		board:    b,
		opts:     opts,
		log:      opts.Logger,
		keys:     defaultKeys(),
		moveKeys: defaultMoveKeys(),
		help:     help.New(),
		input:    ti,
	}
	m.setSize(80, 24)
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) setSize(w, h int) {
	m.width, m.height = w, h
	listH := h - chromeLines
	if m.mode == modeAdd || m.mode == modeEdit || m.mode == modeConfirm {
		listH -= inputLines
	}
	m.board.list.SetSize(w-4, max(listH, rowHeight))
	m.help.Width = w - 4
	m.input.Width = w - 10
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case clearBannerMsg:
		m.banner = m.banner.cleared(msg)
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeMove:
			return m.updateMoveKeys(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.board.list, cmd = m.board.list.Update(msg)
	return m, cmd
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = "New item (at least 5 characters)..."
		m.setSize(m.width, m.height)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Edit):
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		text, err := m.ctrl.BeginEdit(i)
		if err != nil {
			m.ignore(err)
			return m, nil
		}
		m.mode = modeEdit
		m.editErr = ""
		m.input.SetValue(text)
		m.input.CursorEnd()
		m.input.Placeholder = "Edit item..."
		m.setSize(m.width, m.height)
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Delete):
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirm
		m.confirmIndex = i
		m.confirmFocus = focusConfirm
		m.setSize(m.width, m.height)
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		if err := m.ctrl.Sort(); err != nil {
			return m, m.fail(err)
		}
		return m, m.succeed("List sorted alphabetically!")
	case key.Matches(msg, m.keys.Move):
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.beginMove(i, false)
	case key.Matches(msg, m.keys.Yank):
		i, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(m.ctrl.Items()[i].Text); err != nil {
			return m, m.fail(err)
		}
		return m, m.succeed("Copied to clipboard")
	}
	var cmd tea.Cmd
	m.board.list, cmd = m.board.list.Update(msg)
	return m, cmd
}

func (m appModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if _, err := m.ctrl.Add(m.input.Value()); err != nil {
			var verr *controller.ValidationError
			if errors.As(err, &verr) {
				return m, m.failText("Error: " + verr.Error())
			}
			m.closeInput()
			return m, m.fail(err)
		}
		m.closeInput()
		m.board.list.Select(m.ctrl.Len() - 1)
		return m, m.succeed("Item added!")
	case tea.KeyEsc:
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if err := m.ctrl.CommitEdit(m.input.Value()); err != nil {
			var verr *controller.ValidationError
			if errors.As(err, &verr) {
				// The modal stays open for correction.
				m.editErr = verr.Error()
				return m, nil
			}
			m.closeInput()
			return m, m.fail(err)
		}
		m.closeInput()
		return m, m.succeed("Item edited!")
	case tea.KeyEsc:
		m.ctrl.CancelEdit()
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		if m.confirmFocus == focusConfirm {
			m.confirmFocus = focusCancel
		} else {
			m.confirmFocus = focusConfirm
		}
		return m, nil
	case "y":
		return m.answerDelete(true)
	case "n", "esc", "ctrl+g":
		return m.answerDelete(false)
	case "enter":
		return m.answerDelete(m.confirmFocus == focusConfirm)
	}
	return m, nil
}

// answerDelete hands the modal's answer to the controller as its Confirmer.
func (m appModel) answerDelete(yes bool) (tea.Model, tea.Cmd) {
	idx := m.confirmIndex
	m.mode = modeBrowse
	m.setSize(m.width, m.height)

	deleted, err := m.ctrl.Delete(idx, controller.ConfirmFunc(func(string) bool { return yes }))
	if err != nil {
		var ierr *controller.IndexError
		if errors.As(err, &ierr) {
			m.ignore(err)
			return m, nil
		}
		return m, m.fail(err)
	}
	if !deleted {
		return m, nil
	}
	return m, m.succeed("Item deleted!")
}

func (m *appModel) closeInput() {
	m.mode = modeBrowse
	m.editErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.setSize(m.width, m.height)
}

func (m appModel) selected() (int, bool) {
	if m.ctrl.Len() == 0 {
		return 0, false
	}
	i := m.board.list.Index()
	if i < 0 || i >= m.ctrl.Len() {
		return 0, false
	}
	return i, true
}

// ignore drops an out-of-range request. The view derives indexes from the
// current render, so this only happens on a stale event.
func (m appModel) ignore(err error) {
	m.log.Debug("ignored stale request", "err", err)
}

// inputValid reports whether the add input currently holds acceptable text,
// and whether it holds anything at all.
func (m appModel) inputValid() (valid, empty bool) {
	v := m.input.Value()
	_, ok := model.NormalizeText(v)
	return ok, v == ""
}
