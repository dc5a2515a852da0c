package app

import (
	"example.com/simpleeditor/pkg/buffer"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent processes a key event and redraws. It returns true if the
// editor should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	if r.flash {
		r.clearMiniBuffer()
	}
	if r.dispatchKey(ev) {
		return true
	}
	r.draw()
	return false
}

func (r *Runner) dispatchKey(ev *tcell.EventKey) bool {
	if c, ok := r.matchCommand(ev); ok {
		r.Logger.Event("action", map[string]any{"name": c.id})
		return c.action()
	}
	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0
	ctrl := mod&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyF1:
		r.ShowHelp = true
	case tcell.KeyF10:
		return r.runMnemonicMenu(-1)
	case tcell.KeyEsc:
		r.clearSelection()
	case tcell.KeyUp:
		r.moveCursorVertical(-1, shift)
	case tcell.KeyDown:
		r.moveCursorVertical(1, shift)
	case tcell.KeyLeft:
		if ctrl {
			r.moveTo(buffer.WordStart(r.buf(), r.Cursor), shift)
		} else {
			r.moveCursorHorizontal(-1, shift)
		}
	case tcell.KeyRight:
		if ctrl {
			r.moveTo(buffer.NextWordStart(r.buf(), r.Cursor), shift)
		} else {
			r.moveCursorHorizontal(1, shift)
		}
	case tcell.KeyHome:
		if ctrl {
			r.moveTo(0, shift)
		} else {
			r.moveLineStart(shift)
		}
	case tcell.KeyEnd:
		if ctrl {
			r.moveTo(r.buf().Len(), shift)
		} else {
			r.moveLineEnd(shift)
		}
	case tcell.KeyPgUp:
		r.moveCursorVertical(-max(r.textRows()-1, 1), shift)
	case tcell.KeyPgDn:
		r.moveCursorVertical(max(r.textRows()-1, 1), shift)
	case tcell.KeyEnter:
		r.insertText("\n")
	case tcell.KeyTab:
		r.insertText("\t")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r.backspace()
	case tcell.KeyDelete:
		r.deleteForward()
	case tcell.KeyRune:
		switch {
		case mod&tcell.ModAlt != 0:
			return r.handleAltKey(ev.Rune())
		case ctrl:
		default:
			r.insertText(string(ev.Rune()))
		}
	}
	return false
}

// handleAltKey opens menus: Alt+M the menu bar, Alt+<letter> the menu
// whose title starts with that letter.
func (r *Runner) handleAltKey(ch rune) bool {
	if ch == 'm' || ch == 'M' {
		return r.runMnemonicMenu(-1)
	}
	if i := menuIndex(ch); i >= 0 {
		return r.runMnemonicMenu(i)
	}
	return false
}
