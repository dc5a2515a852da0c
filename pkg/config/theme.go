package config

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// Theme represents the colors of the editor window parts.
type Theme struct {
	// Text area
	TextForeground tcell.Color
	TextBackground tcell.Color
	CursorText     tcell.Color
	CursorBG       tcell.Color
	SelectionFG    tcell.Color
	SelectionBG    tcell.Color

	// Menu bar; MenuKey colors the mnemonic letter of each menu title.
	MenuForeground tcell.Color
	MenuBackground tcell.Color
	MenuKey        tcell.Color

	// Ruler
	RulerForeground tcell.Color
	RulerBackground tcell.Color
	RulerTick       tcell.Color

	// Status bar and mini-buffer
	StatusBackground tcell.Color
	StatusForeground tcell.Color
	MiniBackground   tcell.Color
	MiniForeground   tcell.Color
	ErrorForeground  tcell.Color
}

// DefaultTheme mirrors a classic desktop editor: light gray ruler and bars.
func DefaultTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorWhite,
		TextBackground: tcell.ColorBlack,
		CursorText:     tcell.ColorBlack,
		CursorBG:       tcell.ColorGreen,
		SelectionFG:    tcell.ColorBlack,
		SelectionBG:    tcell.ColorYellow,

		MenuForeground: tcell.ColorBlack,
		MenuBackground: tcell.ColorSilver,
		MenuKey:        tcell.ColorMaroon,

		RulerForeground: tcell.ColorBlack,
		RulerBackground: tcell.ColorLightGray,
		RulerTick:       tcell.ColorNavy,

		StatusBackground: tcell.ColorWhite,
		StatusForeground: tcell.ColorBlack,
		MiniBackground:   tcell.ColorWhite,
		MiniForeground:   tcell.ColorBlack,
		ErrorForeground:  tcell.ColorRed,
	}
}

// TerminalTheme leans on the terminal's default colors and ANSI palette so
// the editor follows the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		TextForeground: tcell.ColorDefault,
		TextBackground: tcell.ColorDefault,
		CursorText:     tcell.ColorDefault,
		CursorBG:       tcell.ColorBlue,
		SelectionFG:    tcell.ColorDefault,
		SelectionBG:    tcell.ColorYellow,

		MenuForeground: tcell.ColorDefault,
		MenuBackground: tcell.ColorGray,
		MenuKey:        tcell.ColorRed,

		RulerForeground: tcell.ColorDefault,
		RulerBackground: tcell.ColorGray,
		RulerTick:       tcell.ColorBlue,

		StatusBackground: tcell.ColorGray,
		StatusForeground: tcell.ColorDefault,
		MiniBackground:   tcell.ColorGray,
		MiniForeground:   tcell.ColorDefault,
		ErrorForeground:  tcell.ColorRed,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"light":    DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		TextForeground: tcell.ColorWhite,
		TextBackground: tcell.ColorBlack,
		CursorText:     tcell.ColorBlack,
		CursorBG:       tcell.ColorLightBlue,
		SelectionFG:    tcell.ColorWhite,
		SelectionBG:    tcell.ColorDarkOliveGreen,

		MenuForeground: tcell.ColorWhite,
		MenuBackground: tcell.ColorDarkSlateGray,
		MenuKey:        tcell.ColorLightYellow,

		RulerForeground: tcell.ColorSilver,
		RulerBackground: tcell.ColorDarkSlateGray,
		RulerTick:       tcell.ColorLightCyan,

		StatusBackground: tcell.ColorGray,
		StatusForeground: tcell.ColorWhite,
		MiniBackground:   tcell.ColorGray,
		MiniForeground:   tcell.ColorWhite,
		ErrorForeground:  tcell.ColorLightCoral,
	},
}

// ThemeNames lists the builtin theme names in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(BuiltinThemes))
	for n := range BuiltinThemes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// TextStyle is the style of ordinary text.
func (t Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground).Background(t.TextBackground)
}

// StatusStyle is the style of the status bar.
func (t Theme) StatusStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// MiniStyle is the style of the mini-buffer.
func (t Theme) MiniStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.MiniForeground).Background(t.MiniBackground)
}

// RulerStyle is the background style of the ruler.
func (t Theme) RulerStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.RulerForeground).Background(t.RulerBackground)
}

// MenuStyle is the style of the menu bar.
func (t Theme) MenuStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(t.MenuForeground).Background(t.MenuBackground)
}
