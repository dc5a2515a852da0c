package app

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// mnemonicNode is a menu bar entry: a menu with children or a command.
type mnemonicNode struct {
	key      rune
	name     string
	hint     string
	action   func() bool
	children []*mnemonicNode
}

func (r *Runner) mnemonicMenu() []*mnemonicNode {
	menus := make([]*mnemonicNode, len(menuOrder))
	for i, title := range menuOrder {
		menus[i] = &mnemonicNode{key: unicode.ToLower([]rune(title)[0]), name: title}
	}
	for _, c := range r.commandList() {
		i := slices.Index(menuOrder, c.menu)
		if i < 0 {
			continue
		}
		menus[i].children = append(menus[i].children, &mnemonicNode{
			key:    c.key,
			name:   c.name,
			hint:   r.binding(c),
			action: c.action,
		})
	}
	return menus
}

// menuTitles are the labels drawn on the menu bar.
func (r *Runner) menuTitles() []string {
	return menuOrder
}

func (n *mnemonicNode) lines(sel int) []string {
	lines := make([]string, 0, len(n.children)+1)
	lines = append(lines, n.name+":  Up/Down select, Left/Right switch menu, Esc close")
	for i, child := range n.children {
		prefix := "  "
		if i == sel {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%c  %-16s", prefix, child.key, child.name)
		if child.hint != "" {
			line += child.hint
		}
		lines = append(lines, line)
	}
	return lines
}

// runMnemonicMenu browses the menu bar starting at menu start (0-based),
// or at the bar itself when start is negative. Typing a mnemonic runs the
// matching entry. It returns true if the chosen command requests to quit.
func (r *Runner) runMnemonicMenu(start int) bool {
	if r.Screen == nil {
		return false
	}
	menus := r.mnemonicMenu()
	cur := start
	sel := 0
	closeMenu := func() {
		r.openMenu = 0
		r.clearMiniBuffer()
	}
	run := func(n *mnemonicNode) bool {
		closeMenu()
		r.draw()
		r.Logger.Event("action", map[string]any{"name": "menu", "entry": n.name})
		return n.action()
	}
	for {
		if cur >= 0 {
			r.openMenu = cur + 1
			r.setMiniBuffer(menus[cur].lines(sel))
		} else {
			r.openMenu = 0
			line := "Menu:"
			for _, m := range menus {
				line += fmt.Sprintf("  %c %s", m.key, m.name)
			}
			r.setMiniBuffer([]string{line, "Space opens the command palette, Esc closes"})
		}
		r.draw()

		ev := r.waitEvent()
		if ev == nil {
			closeMenu()
			return false
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case isCancelKey(kev) || kev.Key() == tcell.KeyF10:
			closeMenu()
			return false
		case kev.Key() == tcell.KeyLeft:
			cur = (max(cur, 0) - 1 + len(menus)) % len(menus)
			sel = 0
		case kev.Key() == tcell.KeyRight:
			cur = (cur + 1) % len(menus)
			sel = 0
		case kev.Key() == tcell.KeyUp && cur >= 0:
			n := len(menus[cur].children)
			sel = (sel - 1 + n) % n
		case kev.Key() == tcell.KeyDown && cur >= 0:
			sel = (sel + 1) % len(menus[cur].children)
		case kev.Key() == tcell.KeyEnter:
			if cur < 0 {
				cur, sel = 0, 0
				continue
			}
			return run(menus[cur].children[sel])
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
			ch := unicode.ToLower(kev.Rune())
			if cur < 0 {
				if ch == ' ' {
					closeMenu()
					return r.runCommandMenu()
				}
				if i := menuIndex(ch); i >= 0 {
					cur, sel = i, 0
				}
				continue
			}
			for _, child := range menus[cur].children {
				if child.key == ch {
					return run(child)
				}
			}
		}
	}
}
