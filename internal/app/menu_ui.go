package app

import (
	"strings"
	"unicode"

	"example.com/simpleeditor/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// command is one editor action, reachable from its key binding, the menu
// bar and the command palette.
type command struct {
	id     string // keymap entry; empty when the command has no binding
	menu   string
	key    rune // mnemonic inside its menu
	name   string
	action func() bool
}

// menuOrder is the menu bar, left to right.
var menuOrder = []string{"File", "Edit", "Settings", "Help"}

func (r *Runner) commandList() []command {
	edit := func(f func()) func() bool {
		return func() bool { f(); return false }
	}
	return []command{
		{id: "open", menu: "File", key: 'o', name: "Open", action: edit(r.runOpenPrompt)},
		{id: "save", menu: "File", key: 's', name: "Save", action: edit(r.runSave)},
		{menu: "File", key: 'a', name: "Save As", action: edit(r.runSaveAsPrompt)},
		{id: "quit", menu: "File", key: 'x', name: "Exit", action: r.runQuitPrompt},

		{id: "cut", menu: "Edit", key: 't', name: "Cut", action: edit(r.cutSelection)},
		{id: "copy", menu: "Edit", key: 'c', name: "Copy", action: edit(func() { r.copySelection() })},
		{id: "paste", menu: "Edit", key: 'p', name: "Paste", action: edit(r.paste)},
		{id: "select_all", menu: "Edit", key: 'a', name: "Select All", action: edit(r.selectAll)},
		{id: "undo", menu: "Edit", key: 'u', name: "Undo", action: edit(r.undo)},
		{id: "redo", menu: "Edit", key: 'r', name: "Redo", action: edit(r.redo)},
		{id: "goto", menu: "Edit", key: 'g', name: "Go To Line", action: edit(r.runGoToPrompt)},

		{id: "font", menu: "Settings", key: 'f', name: "Font", action: edit(r.runFontDialog)},
		{menu: "Settings", key: 'n', name: "Next Theme", action: edit(r.NextTheme)},
		{menu: "Settings", key: 'p', name: "Previous Theme", action: edit(r.PrevTheme)},

		{menu: "Help", key: 'h', name: "Help", action: edit(func() { r.ShowHelp = true })},
		{id: "menu", menu: "Help", key: 'c', name: "Command Palette", action: r.runCommandMenu},
		{id: "about", menu: "Help", key: 'a', name: "About", action: edit(r.showAbout)},
	}
}

// keymap returns the active bindings, falling back to the defaults.
func (r *Runner) keymap() map[string]config.Keybinding {
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	return r.Keymap
}

// matchCommand finds the command bound to ev in the keymap.
func (r *Runner) matchCommand(ev *tcell.EventKey) (command, bool) {
	for _, c := range r.commandList() {
		if c.id == "" {
			continue
		}
		if kb, ok := r.keymap()[c.id]; ok && kb.Matches(ev) {
			return c, true
		}
	}
	return command{}, false
}

// binding returns the key binding text of c, if any.
func (r *Runner) binding(c command) string {
	if c.id == "" {
		return ""
	}
	return r.keymap()[c.id].String()
}

func (r *Runner) showAbout() {
	r.showDialogLines([]string{
		"Simple Text Editor",
		"A minimal plain-text editor with a column ruler.",
	}, false)
}

// fuzzyMatch reports whether the runes of query appear in name in order,
// ignoring case.
func fuzzyMatch(name, query string) bool {
	q := []rune(strings.ToLower(query))
	if len(q) == 0 {
		return true
	}
	i := 0
	for _, ch := range strings.ToLower(name) {
		if ch == q[i] {
			i++
			if i == len(q) {
				return true
			}
		}
	}
	return false
}

func (c command) label() string {
	return strings.ToLower(c.menu) + ": " + strings.ToLower(c.name)
}

// runCommandMenu opens a mini-buffer menu listing commands. It supports
// fuzzy filtering by typing and navigation with Up/Down or Ctrl+P/Ctrl+N.
// Enter executes the highlighted command. It returns true if the command
// requests to quit.
func (r *Runner) runCommandMenu() bool {
	if r.Screen == nil {
		return false
	}
	var cmds []command
	for _, c := range r.commandList() {
		if c.id != "menu" {
			cmds = append(cmds, c)
		}
	}
	query := ""
	sel := 0
	for {
		var filtered []command
		for _, c := range cmds {
			if fuzzyMatch(c.label(), query) {
				filtered = append(filtered, c)
			}
		}
		sel = max(min(sel, len(filtered)-1), 0)
		lines := []string{"Command: " + query}
		for i := 0; i < len(filtered) && i < 10; i++ {
			prefix := "  "
			if i == sel {
				prefix = "> "
			}
			line := prefix + filtered[i].label()
			if kb := r.binding(filtered[i]); kb != "" {
				line += "  (" + kb + ")"
			}
			lines = append(lines, line)
		}
		r.setMiniBuffer(lines)
		r.draw()

		ev := r.waitEvent()
		if ev == nil {
			r.clearMiniBuffer()
			return false
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case isCancelKey(kev):
			r.clearMiniBuffer()
			return false
		case kev.Key() == tcell.KeyEnter:
			r.clearMiniBuffer()
			r.draw()
			if len(filtered) > 0 {
				return filtered[sel].action()
			}
			return false
		case kev.Key() == tcell.KeyBackspace || kev.Key() == tcell.KeyBackspace2:
			if q := []rune(query); len(q) > 0 {
				query = string(q[:len(q)-1])
				sel = 0
			}
		case kev.Key() == tcell.KeyUp || kev.Key() == tcell.KeyCtrlP:
			if sel > 0 {
				sel--
			}
		case kev.Key() == tcell.KeyDown || kev.Key() == tcell.KeyCtrlN:
			if sel < len(filtered)-1 {
				sel++
			}
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
			query += string(kev.Rune())
			sel = 0
		}
	}
}

// helpLines lists the key bindings for the help screen.
func (r *Runner) helpLines() []string {
	lines := []string{"Simple Text Editor", ""}
	for _, c := range r.commandList() {
		kb := r.binding(c)
		if kb == "" {
			continue
		}
		lines = append(lines, padRight(kb, 14)+c.name)
	}
	lines = append(lines,
		padRight("F10, Alt+M", 14)+"Menu bar",
		padRight("Alt+F/E/S/H", 14)+"Open a menu",
		padRight("Shift+arrows", 14)+"Select text",
		padRight("Ctrl+arrows", 14)+"Move by word",
		padRight("F1", 14)+"This help",
		"",
		"Press any key to return",
	)
	return lines
}

func padRight(s string, n int) string {
	if pad := n - len([]rune(s)); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s + " "
}

// menuIndex returns the 0-based position of the menu whose title starts
// with ch, or -1.
func menuIndex(ch rune) int {
	ch = unicode.ToLower(ch)
	for i, m := range menuOrder {
		if unicode.ToLower([]rune(m)[0]) == ch {
			return i
		}
	}
	return -1
}
