package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treeline-cli/internal/outline"
)

type keyMap struct {
	Parent   key.Binding
	Child    key.Binding
	Prev     key.Binding
	Next     key.Binding
	SwapPrev key.Binding
	SwapNext key.Binding
	Promote  key.Binding
	Demote   key.Binding
	Nest     key.Binding
	Flatten  key.Binding

	Edit         key.Binding
	InsertChild  key.Binding
	InsertParent key.Binding
	InsertBefore key.Binding
	InsertAfter  key.Binding
	Delete       key.Binding

	Save key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Parent:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "parent")),
	Child:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "child")),
	Prev:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev")),
	Next:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next")),
	SwapPrev: key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "swap prev")),
	SwapNext: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "swap next")),
	Promote:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "promote")),
	Demote:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "demote")),
	Nest:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "nest")),
	Flatten:  key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "flatten")),

	Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	InsertChild:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "child")),
	InsertParent: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "parent")),
	InsertBefore: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "before")),
	InsertAfter:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "after")),
	Delete:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),

	Save: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Bail out without saving.
			return m, tea.Quit
		}
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modeEmpty:
			return m.updateEmpty(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.Parent):
		m.cursor = m.cursor.FocusParent()
	case key.Matches(msg, keys.Child):
		m.cursor = m.cursor.FocusChild()
	case key.Matches(msg, keys.Prev):
		m.cursor = m.cursor.FocusPrev()
	case key.Matches(msg, keys.Next):
		m.cursor = m.cursor.FocusNext()

	case key.Matches(msg, keys.SwapPrev):
		m.cursor = m.cursor.SwapPrev()
		m.dirty = true
	case key.Matches(msg, keys.SwapNext):
		m.cursor = m.cursor.SwapNext()
		m.dirty = true
	case key.Matches(msg, keys.Promote):
		m.cursor = m.cursor.Promote()
		m.dirty = true
	case key.Matches(msg, keys.Demote):
		m.cursor = m.cursor.Demote()
		m.dirty = true
	case key.Matches(msg, keys.Nest):
		m.cursor = m.cursor.Nest()
		m.dirty = true
	case key.Matches(msg, keys.Flatten):
		m.cursor = m.cursor.Flatten()
		m.dirty = true

	case key.Matches(msg, keys.Edit):
		m.startInput(inputEditLabel, m.cursor.Label())
	case key.Matches(msg, keys.InsertChild):
		m.startInput(inputInsertChild, "")
	case key.Matches(msg, keys.InsertParent):
		m.startInput(inputInsertParent, "")
	case key.Matches(msg, keys.InsertBefore):
		m.startInput(inputInsertBefore, "")
	case key.Matches(msg, keys.InsertAfter):
		m.startInput(inputInsertAfter, "")
	case key.Matches(msg, keys.Delete):
		m.mode = modeConfirmDelete

	case key.Matches(msg, keys.Save):
		m.save()
	case key.Matches(msg, keys.Quit):
		m.save()
		if m.err != nil {
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopInput()
		return m, nil
	case "enter":
		m.submitInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput applies the typed label according to the pending action.
// An empty label is legal everywhere: new nodes start unlabeled.
func (m *appModel) submitInput() {
	label := strings.TrimSpace(m.input.Value())
	switch m.action {
	case inputEditLabel:
		m.cursor = m.cursor.SetLabel(label)
	case inputInsertChild:
		m.cursor = m.cursor.InsertChild(label)
	case inputInsertParent:
		m.cursor = m.cursor.InsertParent(label)
	case inputInsertBefore:
		m.cursor = m.cursor.InsertBefore(label)
	case inputInsertAfter:
		m.cursor = m.cursor.InsertAfter(label)
	case inputInsertFirst:
		m.cursor = outline.New().SetLabel(label)
	}
	m.dirty = true
	m.stopInput()
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		c, ok := m.cursor.Delete()
		m.dirty = true
		if !ok {
			m.cursor = nil
			m.mode = modeEmpty
			return m, nil
		}
		m.cursor = c
		m.mode = modeNormal
	case "n", "esc":
		m.mode = modeNormal
	}
	return m, nil
}

func (m appModel) updateEmpty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.InsertAfter), key.Matches(msg, keys.InsertChild):
		m.startInput(inputInsertFirst, "")
	case key.Matches(msg, keys.Save):
		m.save()
	case key.Matches(msg, keys.Quit):
		m.save()
		if m.err != nil {
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

// save persists the current state, nil cursor included (that records
// the empty outline).
func (m *appModel) save() {
	if err := m.store.Save(context.Background(), m.cursor); err != nil {
		m.err = err
		m.status = "Save failed: " + err.Error()
		return
	}
	m.err = nil
	m.dirty = false
	m.status = "Saved."
}
