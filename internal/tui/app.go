// Package tui is the interactive outline editor: a modal bubbletea
// loop over the cursor structure, with all edits applied to the
// focused node.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"treeline-cli/internal/store"
)

// Run loads the persisted outline (if any) and hands the terminal to
// the editor until the user quits.
func Run(s store.Store) error {
	applyGlyphPreference()

	c, err := s.Load(context.Background())
	if err != nil {
		return err
	}

	p := tea.NewProgram(newAppModel(s, c), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
