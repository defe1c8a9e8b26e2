package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileblast/internal/level"
)

// Theme contains all configurable visual styles for the board and HUD.
type Theme struct {
	// Cell styles keyed by level label
	Cells     map[string]lipgloss.Style
	EmptyCell lipgloss.Style
	Cursor    lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style

	// Obstacle counter
	CounterLabel   lipgloss.Style
	CounterCleared lipgloss.Style

	// Popup styles
	PopupBorder lipgloss.Style
	PopupWin    lipgloss.Style
	PopupLose   lipgloss.Style
	PopupText   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[string]lipgloss.Style{
			level.LabelRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			level.LabelGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			level.LabelBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			level.LabelYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			level.LabelTNT:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			level.LabelBox:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			level.LabelStone:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			level.LabelVase:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		},
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cursor:    lipgloss.NewStyle().Reverse(true),

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDControls:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		CounterLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CounterCleared: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),

		PopupBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 2),
		PopupWin:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		PopupLose: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		PopupText: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Cells[level.LabelRed] = lipgloss.NewStyle().Foreground(lipgloss.Color("199"))
	theme.Cells[level.LabelGreen] = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	theme.Cells[level.LabelBlue] = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	theme.Cells[level.LabelYellow] = lipgloss.NewStyle().Foreground(lipgloss.Color("227"))
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for label := range theme.Cells {
		theme.Cells[label] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	}
	theme.CounterCleared = lipgloss.NewStyle().Bold(true)
	theme.PopupWin = lipgloss.NewStyle().Bold(true)
	theme.PopupLose = lipgloss.NewStyle().Bold(true)
	return theme
}

// ThemeByName resolves a configured theme name. Unknown names fall back to
// the default theme.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// CellStyle returns the style for a board label.
func (t Theme) CellStyle(label string) lipgloss.Style {
	if s, ok := t.Cells[label]; ok {
		return s
	}
	return t.EmptyCell
}
