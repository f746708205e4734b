package tui

import "github.com/charmbracelet/lipgloss"

// The editor must stay readable on light and dark terminals, so every
// color is adaptive.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorTree       lipgloss.TerminalColor = ac("245", "240")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorDangerBg   lipgloss.TerminalColor = ac("#ffd7d7", "#5f0000")
	colorStatusBg   lipgloss.TerminalColor = ac("254", "236")
	colorInputBg    lipgloss.TerminalColor = ac("255", "235")
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleTree   = lipgloss.NewStyle().Foreground(colorTree)

	styleFocused = lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	styleFocusedDelete = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorDangerBg).
				Bold(true)

	styleStatus = lipgloss.NewStyle().Background(colorStatusBg)
	styleFooter = lipgloss.NewStyle().Foreground(colorMuted)
	styleKeyCap = lipgloss.NewStyle().Bold(true)
)
