package app

import "errors"

// runSave saves to the current file, asking for a path when there is none.
// Failures are reported in a dialog and leave the buffer dirty.
func (r *Runner) runSave() {
	r.Logger.Event("action", map[string]any{"name": "save", "file": r.FilePath})
	if r.FilePath == "" {
		r.runSaveAsPrompt()
		return
	}
	if err := r.Save(); err != nil {
		r.showError(err.Error())
		return
	}
	r.flashMessage("Saved " + r.FilePath)
}

// runSaveAsPrompt prompts for a file path and saves the current buffer
// there. Existing files are overwritten.
func (r *Runner) runSaveAsPrompt() {
	if r.Screen == nil {
		return
	}
	ok := r.runPrompt("Save As: ", r.FilePath, func(path string) error {
		if path == "" {
			return errors.New("path required")
		}
		return r.SaveAs(path)
	})
	if ok {
		r.flashMessage("Saved " + r.FilePath)
	}
}
