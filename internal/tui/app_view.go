package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	width := m.width
	if width < 40 {
		width = 40
	}
	bodyHeight := m.height - 3
	if bodyHeight < 8 {
		bodyHeight = 8
	}

	header := styleHeader.Render(m.headerLine())
	body := m.viewBody(width, bodyHeight)
	status := m.viewStatus(width)
	footer := styleFooter.Render(m.footerLine())

	return strings.Join([]string{header, body, status, footer}, "\n")
}

func (m appModel) headerLine() string {
	n := 0
	if m.cursor != nil {
		n = m.cursor.Len()
	}
	return fmt.Sprintf("Treeline  Dir=%s  Nodes=%d%s", m.store.Dir, n, dirtyMark(m.dirty))
}

func dirtyMark(dirty bool) string {
	if dirty {
		return "  [+]"
	}
	return ""
}

func (m appModel) viewBody(width, height int) string {
	if m.cursor == nil {
		lines := make([]string, height)
		lines[0] = styleFooter.Render(" Empty outline. Press o to add the first node.")
		return strings.Join(lines, "\n")
	}

	rows := forestRows(m.cursor)
	start := scrollWindow(focusIndex(rows), len(rows), height)

	lines := make([]string, 0, height)
	for i := start; i < len(rows) && len(lines) < height; i++ {
		lines = append(lines, m.renderRow(rows[i], width))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// scrollWindow keeps the focused row visible, roughly centered once
// the outline outgrows the viewport.
func scrollWindow(focus, total, height int) int {
	if total <= height {
		return 0
	}
	start := focus - height/2
	if start < 0 {
		start = 0
	}
	if start > total-height {
		start = total - height
	}
	return start
}

func (m appModel) renderRow(row treeRow, width int) string {
	connector := styleTree.Render(row.connector)
	label := row.label
	if row.focused {
		st := styleFocused
		if m.mode == modeConfirmDelete {
			st = styleFocusedDelete
		}
		return connector + st.Render(" "+label+" ")
	}
	line := connector + label
	if xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}

func (m appModel) viewStatus(width int) string {
	if m.mode == modeInput {
		return renderInputLine(width, m.input.View())
	}
	var msg string
	switch m.mode {
	case modeConfirmDelete:
		msg = fmt.Sprintf("Delete %q and splice its children here? (y/n)", m.cursor.Label())
	case modeEmpty:
		msg = "Empty outline."
	default:
		if m.status != "" {
			msg = m.status
		} else {
			msg = fmt.Sprintf("%d nodes.", m.cursor.Len())
		}
	}
	return styleStatus.Width(width).Render(" " + msg)
}

func (m appModel) footerLine() string {
	var pairs [][2]string
	switch m.mode {
	case modeInput:
		pairs = [][2]string{{"enter", "submit"}, {"esc", "cancel"}}
	case modeConfirmDelete:
		pairs = [][2]string{{"y", "delete"}, {"n", "keep"}}
	case modeEmpty:
		pairs = [][2]string{{"o", "insert"}, {"q", "quit"}}
	default:
		pairs = [][2]string{
			{"hjkl", "move"}, {"<>", "promote/demote"}, {"JK", "swap"},
			{"g/G", "nest/flatten"}, {"oOiIe", "insert/edit"}, {"x", "delete"},
			{"s", "save"}, {"q", "quit"},
		}
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, styleKeyCap.Render(" "+p[0]+" ")+p[1])
	}
	return strings.Join(parts, "  ")
}

// renderInputLine keeps the text input on a single visual line and
// inside the given width; overflow would otherwise look like inserted
// newlines while typing.
func renderInputLine(width int, inputView string) string {
	if width < 10 {
		width = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
