package tui

import (
	"strings"

	"treeline-cli/internal/outline"
)

// treeRow is one display line of the outline: the connector prefix
// drawn in the tree color, the label, and whether it is the focus.
type treeRow struct {
	connector string
	label     string
	focused   bool
}

// indentBlock is one column of a connector prefix: either blank (the
// sibling chain at that depth is finished) or a continuation bar.
type indentBlock int

const (
	indentSpacer indentBlock = iota
	indentVertBar
)

// forestRows projects the cursor's forest into display rows. The
// prefix stack mirrors the traversal: later siblings close the levels
// their predecessors opened.
func forestRows(c *outline.Cursor) []treeRow {
	var rows []treeRow
	var prefix []indentBlock
	it := c.Nodes()
	for {
		info, ok := it.Next()
		if !ok {
			return rows
		}
		switch info.Position {
		case outline.PositionRoot:
			prefix = prefix[:0]
			rows = append(rows, treeRow{connector: " ", label: info.Label, focused: info.IsFocused})
			continue
		case outline.PositionLaterSibling:
			for len(prefix) > 0 && prefix[len(prefix)-1] == indentSpacer {
				prefix = prefix[:len(prefix)-1]
			}
			if len(prefix) > 0 {
				prefix = prefix[:len(prefix)-1]
			}
		case outline.PositionFirstChild:
		}
		connector := " "
		for _, block := range prefix {
			if block == indentVertBar {
				connector += glyphVert()
			} else {
				connector += glyphSpacer()
			}
		}
		if info.IsLastSibling {
			connector += glyphCorner()
			prefix = append(prefix, indentSpacer)
		} else {
			connector += glyphTee()
			prefix = append(prefix, indentVertBar)
		}
		rows = append(rows, treeRow{connector: connector, label: info.Label, focused: info.IsFocused})
	}
}

// RenderText renders the forest as plain connector-prefixed text, one
// node per line, for non-interactive output. The focused node gets a
// trailing marker when markFocus is set.
func RenderText(c *outline.Cursor, markFocus bool) string {
	applyGlyphPreference()
	var b strings.Builder
	for _, row := range forestRows(c) {
		b.WriteString(row.connector)
		b.WriteString(row.label)
		if markFocus && row.focused {
			b.WriteString("  *")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// focusIndex returns the row index of the focused node, or 0.
func focusIndex(rows []treeRow) int {
	for i, r := range rows {
		if r.focused {
			return i
		}
	}
	return 0
}
