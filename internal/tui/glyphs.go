package tui

import (
	"os"
	"strings"
	"sync"
)

// The tree connectors default to box-drawing characters. Terminals or
// fonts that render those poorly can switch to ASCII via
// TREELINE_TUI_GLYPHS=ascii.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference() {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TREELINE_TUI_GLYPHS")))
	switch v {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

// glyphTee connects a node that has later siblings.
func glyphTee() string {
	if glyphs() == glyphSetASCII {
		return "|--"
	}
	return "├──"
}

// glyphCorner connects the last sibling in a chain.
func glyphCorner() string {
	if glyphs() == glyphSetASCII {
		return "`--"
	}
	return "└──"
}

// glyphVert continues a sibling chain past a nested subtree.
func glyphVert() string {
	if glyphs() == glyphSetASCII {
		return "|  "
	}
	return "│  "
}

func glyphSpacer() string {
	return "   "
}
