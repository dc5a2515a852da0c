package app

import (
	"fmt"
	"slices"
	"strconv"

	"example.com/simpleeditor/pkg/typeface"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/math/fixed"
)

// activeFont is r.Font, or the base font when r.Font is unusable.
func (r *Runner) activeFont() typeface.Font {
	if r.Font.Validate() == nil {
		return r.Font
	}
	return r.baseFont()
}

func (r *Runner) baseFont() typeface.Font {
	if r.BaseFont.Validate() == nil {
		return r.BaseFont
	}
	return typeface.Default()
}

// fontMetrics returns the character width of the active font and the
// number of cells one of its columns spans.
func (r *Runner) fontMetrics() (fixed.Int26_6, int) {
	if r.Metrics == nil {
		r.Metrics = typeface.NewMetrics()
	}
	f, base := r.activeFont(), r.baseFont()
	cw, err := r.Metrics.CharWidth(f)
	if err != nil {
		r.Logger.Error("font.error", err, map[string]any{"font": f.String()})
		return fixed.I(1), 1
	}
	span, err := r.Metrics.Span(f, base)
	if err != nil {
		r.Logger.Error("font.error", err, map[string]any{"font": base.String()})
	}
	return cw, span
}

// SetFont applies f to the text area. The ruler and the text pick up the
// new character width on the next draw.
func (r *Runner) SetFont(f typeface.Font) error {
	if err := f.Validate(); err != nil {
		return err
	}
	prev := r.activeFont()
	r.Font = f
	r.Logger.Event("font.change", map[string]any{"from": prev.String(), "to": f.String()})
	return nil
}

const (
	fontFieldFamily = iota
	fontFieldSize
	fontFieldWeight
	fontFieldCount
)

// fontDialog is the state of the font dialog between key presses.
type fontDialog struct {
	families []string
	family   int
	size     string
	weight   typeface.Weight
	field    int
	typed    bool // a digit was typed since the size field got focus
}

func newFontDialog(f typeface.Font) *fontDialog {
	d := &fontDialog{
		families: typeface.Families(),
		size:     strconv.Itoa(f.Size),
		weight:   f.Weight,
	}
	d.family = max(slices.Index(d.families, f.Family), 0)
	return d
}

func (d *fontDialog) font() (typeface.Font, error) {
	size, err := strconv.Atoi(d.size)
	if err != nil {
		return typeface.Font{}, fmt.Errorf("font size %q is not a number", d.size)
	}
	f := typeface.Font{Family: d.families[d.family], Size: size, Weight: d.weight}
	return f, f.Validate()
}

// fitWeight picks the nearest weight the current family ships.
func (d *fontDialog) fitWeight() {
	ws := typeface.Weights(d.families[d.family])
	if len(ws) == 0 || slices.Contains(ws, d.weight) {
		return
	}
	best := ws[0]
	for _, w := range ws {
		if w <= d.weight {
			best = w
		}
	}
	d.weight = best
}

// step changes the focused field by delta.
func (d *fontDialog) step(delta int) {
	switch d.field {
	case fontFieldFamily:
		n := len(d.families)
		d.family = (d.family + delta + n) % n
		d.fitWeight()
	case fontFieldSize:
		size, err := strconv.Atoi(d.size)
		if err != nil {
			size = typeface.Default().Size
		}
		size = min(max(size+delta, typeface.MinSize), typeface.MaxSize)
		d.size = strconv.Itoa(size)
	case fontFieldWeight:
		ws := typeface.Weights(d.families[d.family])
		i := max(slices.Index(ws, d.weight), 0)
		d.weight = ws[(i+delta+len(ws))%len(ws)]
	}
	d.typed = false
}

func (d *fontDialog) focus(delta int) {
	d.field = (d.field + delta + fontFieldCount) % fontFieldCount
	d.typed = false
}

func (d *fontDialog) typeDigit(ch rune) {
	if d.field != fontFieldSize {
		return
	}
	if !d.typed {
		d.size = ""
		d.typed = true
	}
	if len(d.size) < 2 {
		d.size += string(ch)
	}
}

func (d *fontDialog) backspace() {
	if d.field != fontFieldSize || d.size == "" {
		return
	}
	d.size = d.size[:len(d.size)-1]
	d.typed = true
}

func (d *fontDialog) lines() []string {
	fields := [fontFieldCount]string{d.families[d.family], d.size, d.weight.String()}
	for i := range fields {
		if i == d.field {
			fields[i] = "[" + fields[i] + "]"
		} else {
			fields[i] = " " + fields[i] + " "
		}
	}
	return []string{
		fmt.Sprintf("Font: %s  Size: %s  Weight: %s", fields[fontFieldFamily], fields[fontFieldSize], fields[fontFieldWeight]),
		"Tab next field, Up/Down change, Enter apply, Esc cancel",
	}
}

// runFontDialog lets the user pick a family, size and weight. Enter applies
// the choice, Esc leaves the font unchanged.
func (r *Runner) runFontDialog() {
	if r.Screen == nil {
		return
	}
	defer func() {
		r.clearMiniBuffer()
		r.draw()
	}()
	d := newFontDialog(r.activeFont())
	errMsg := ""
	for {
		lines := d.lines()
		if errMsg != "" {
			lines = append(lines, errMsg)
		}
		r.setMiniBuffer(lines)
		r.miniErr = errMsg != ""
		r.draw()

		ev := r.waitEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		errMsg = ""
		switch kev.Key() {
		case tcell.KeyEsc:
			return
		case tcell.KeyEnter:
			f, err := d.font()
			if err == nil {
				err = r.SetFont(f)
			}
			if err != nil {
				errMsg = err.Error()
				continue
			}
			return
		case tcell.KeyTab:
			d.focus(1)
		case tcell.KeyBacktab:
			d.focus(-1)
		case tcell.KeyUp, tcell.KeyRight:
			d.step(1)
		case tcell.KeyDown, tcell.KeyLeft:
			d.step(-1)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			d.backspace()
		case tcell.KeyRune:
			if ch := kev.Rune(); ch >= '0' && ch <= '9' {
				d.typeDigit(ch)
			}
		}
	}
}
