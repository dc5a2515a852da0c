package app

import (
	"slices"

	"example.com/simpleeditor/pkg/config"
)

// applyTheme switches to the builtin theme name and announces it.
func (r *Runner) applyTheme(name string) {
	t, ok := config.BuiltinThemes[name]
	if !ok {
		return
	}
	r.Theme = t
	r.ThemeName = name
	r.Logger.Event("action", map[string]any{"name": "theme", "theme": name})
	r.flashMessage("Theme: " + name)
}

func (r *Runner) cycleTheme(delta int) {
	names := config.ThemeNames()
	if len(names) == 0 {
		return
	}
	i := slices.Index(names, r.ThemeName)
	if i < 0 {
		r.applyTheme(names[0])
		return
	}
	r.applyTheme(names[(i+delta+len(names))%len(names)])
}

// NextTheme cycles to the next builtin theme and applies it.
func (r *Runner) NextTheme() { r.cycleTheme(1) }

// PrevTheme cycles to the previous builtin theme and applies it.
func (r *Runner) PrevTheme() { r.cycleTheme(-1) }
