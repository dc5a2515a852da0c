package app

import "github.com/gdamore/tcell/v2"

func isCancelKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEsc
}

// runPrompt reads one line of input in the mini-buffer. Enter passes the
// input to accept; an error is shown under the input and the prompt stays
// open for another try. Esc cancels. It reports whether input was accepted.
func (r *Runner) runPrompt(label, initial string, accept func(string) error) bool {
	if r.Screen == nil {
		return false
	}
	defer func() {
		r.clearMiniBuffer()
		r.draw()
	}()
	input := []rune(initial)
	errMsg := ""
	for {
		lines := []string{label + string(input)}
		if errMsg != "" {
			lines = append(lines, errMsg)
		}
		r.setMiniBuffer(lines)
		r.miniErr = errMsg != ""
		r.draw()

		ev := r.waitEvent()
		if ev == nil {
			return false
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case isCancelKey(kev):
			return false
		case kev.Key() == tcell.KeyEnter:
			err := accept(string(input))
			if err == nil {
				return true
			}
			errMsg = err.Error()
		case kev.Key() == tcell.KeyBackspace || kev.Key() == tcell.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
			errMsg = ""
		case kev.Key() == tcell.KeyCtrlU:
			input = input[:0]
			errMsg = ""
		case kev.Key() == tcell.KeyRune && kev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
			input = append(input, kev.Rune())
			errMsg = ""
		}
	}
}

// confirm asks a yes/no question in the mini-buffer. Esc and 'n' answer no.
func (r *Runner) confirm(question string) bool {
	if r.Screen == nil {
		return true
	}
	defer r.clearMiniBuffer()
	r.setMiniBuffer([]string{question + " (y/n)"})
	r.draw()
	for {
		ev := r.waitEvent()
		if ev == nil {
			return false
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if isCancelKey(kev) {
			return false
		}
		if kev.Key() != tcell.KeyRune {
			continue
		}
		switch kev.Rune() {
		case 'y', 'Y':
			return true
		case 'n', 'N':
			return false
		}
	}
}
