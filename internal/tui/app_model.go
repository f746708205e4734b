package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"treeline-cli/internal/outline"
	"treeline-cli/internal/store"
)

type mode int

const (
	// modeNormal: navigation and structural edits.
	modeNormal mode = iota
	// modeInput: typing a label for an edit or insert.
	modeInput
	// modeConfirmDelete: waiting for y/n on a delete.
	modeConfirmDelete
	// modeEmpty: the forest has no nodes; only insert and quit apply.
	modeEmpty
)

// inputAction says where a submitted label goes.
type inputAction int

const (
	inputEditLabel inputAction = iota
	inputInsertChild
	inputInsertParent
	inputInsertBefore
	inputInsertAfter
	// inputInsertFirst: first node of an empty forest.
	inputInsertFirst
)

type appModel struct {
	store  store.Store
	cursor *outline.Cursor // nil while the forest is empty

	mode   mode
	action inputAction
	input  textinput.Model

	width  int
	height int

	status string
	dirty  bool
	err    error
}

func newAppModel(s store.Store, c *outline.Cursor) appModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 0

	m := appModel{
		store:  s,
		cursor: c,
		input:  in,
	}
	if c == nil {
		m.mode = modeEmpty
	}
	return m
}

// startInput switches to input mode for the given action, prefilled
// when editing an existing label.
func (m *appModel) startInput(action inputAction, prefill string) {
	m.action = action
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	m.input.Focus()
	m.mode = modeInput
}

func (m *appModel) stopInput() {
	m.input.Blur()
	m.input.SetValue("")
	if m.cursor == nil {
		m.mode = modeEmpty
	} else {
		m.mode = modeNormal
	}
}
