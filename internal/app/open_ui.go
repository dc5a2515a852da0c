package app

import "errors"

// runOpenPrompt prompts for a file path and loads it into the buffer.
// A failed load keeps the prompt open with the error underneath.
func (r *Runner) runOpenPrompt() {
	if r.Screen == nil {
		return
	}
	if r.Dirty && !r.confirm("Discard unsaved changes?") {
		return
	}
	opened := ""
	ok := r.runPrompt("Open: ", "", func(path string) error {
		if path == "" {
			return errors.New("path required")
		}
		r.Logger.Event("open.prompt.submit", map[string]any{"file": path})
		if err := r.LoadFile(path); err != nil {
			return err
		}
		opened = path
		return nil
	})
	if ok {
		r.flashMessage("Opened " + opened)
	}
}
