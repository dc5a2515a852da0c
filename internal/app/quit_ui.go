package app

// runQuitPrompt asks for confirmation when the buffer is dirty. It returns
// true if the editor should exit.
func (r *Runner) runQuitPrompt() bool {
	if !r.Dirty {
		return true
	}
	return r.confirm("Unsaved changes. Quit without saving?")
}
