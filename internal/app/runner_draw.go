package app

import (
	"example.com/simpleeditor/pkg/config"
	"example.com/simpleeditor/pkg/ruler"
	"example.com/simpleeditor/pkg/status"
	"example.com/simpleeditor/pkg/typeface"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/math/fixed"
)

// Screen rows above the text area.
const (
	menuRow     = 0
	rulerTop    = 1
	rulerHeight = 2
	textTop     = rulerTop + rulerHeight
)

// renderState captures a snapshot of editor state for the renderer.
type renderState struct {
	lines     []string
	topLine   int
	leftCol   int
	textRows  int
	cursor    int
	cursorCol int // display column of the cursor
	selStart  int
	selEnd    int
	span      int
	charWidth fixed.Int26_6
	bold      bool
	theme     config.Theme
	menus     []string
	openMenu  int
	status    string
	info      string
	title     string
	miniBuf   []string
	miniErr   bool
	showHelp  bool
	help      []string
}

// textRows is the number of rows available to the text area.
func (r *Runner) textRows() int {
	if r.Screen == nil {
		return 0
	}
	_, h := r.Screen.Size()
	return max(h-textTop-1-len(r.MiniBuf), 0)
}

// visibleColumns is the number of whole display columns that fit across
// the screen at the active font's span.
func (r *Runner) visibleColumns() int {
	if r.Screen == nil {
		return 0
	}
	w, _ := r.Screen.Size()
	_, span := r.fontMetrics()
	return w / span
}

// renderSnapshot captures the current runner state into a renderState.
func (r *Runner) renderSnapshot() renderState {
	r.ensureCursorVisible()
	cw, span := r.fontMetrics()
	b := r.buf()
	start, end, _ := r.selection()
	font := r.activeFont()
	info := font.String() + "  " + r.DisplayName()
	if r.Dirty {
		info += " [+]"
	}
	return renderState{
		lines:     b.Lines(),
		topLine:   r.TopLine,
		leftCol:   r.LeftCol,
		textRows:  r.textRows(),
		cursor:    r.Cursor,
		cursorCol: r.cursorDisplayCol(),
		selStart:  start,
		selEnd:    end,
		span:      span,
		charWidth: cw,
		bold:      font.Weight == typeface.Bold,
		theme:     r.Theme,
		menus:     r.menuTitles(),
		openMenu:  r.openMenu,
		status:    status.FromBuffer(b, r.Cursor).String(),
		info:      info,
		title:     r.DisplayName(),
		miniBuf:   append([]string(nil), r.MiniBuf...),
		miniErr:   r.miniErr,
		showHelp:  r.ShowHelp,
		help:      r.helpLines(),
	}
}

// draw renders the window. If a render channel is configured, the snapshot
// is sent there; otherwise it is drawn synchronously.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	snapshot := r.renderSnapshot()
	if r.RenderCh != nil {
		r.RenderCh <- snapshot
		return
	}
	renderToScreen(r.Screen, snapshot)
}

// renderToScreen draws the provided snapshot to the tcell screen.
func renderToScreen(s tcell.Screen, st renderState) {
	s.SetTitle(st.title)
	s.Clear()
	if st.showHelp {
		drawHelp(s, st)
		s.Show()
		return
	}
	drawMenuBar(s, st)
	drawRuler(s, st)
	drawText(s, st)
	drawMiniBuffer(s, st)
	drawStatus(s, st)
	s.Show()
}

// drawString writes text from column x and returns the column after it.
func drawString(s tcell.Screen, x, y int, text string, style tcell.Style, width int) int {
	for _, ch := range text {
		if x >= width {
			break
		}
		s.SetContent(x, y, ch, nil, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	return x
}

func fillRow(s tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func drawMenuBar(s tcell.Screen, st renderState) {
	width, _ := s.Size()
	base := st.theme.MenuStyle()
	fillRow(s, menuRow, width, base)
	x := 1
	for i, title := range st.menus {
		style := base
		if i+1 == st.openMenu {
			style = style.Reverse(true)
		}
		x = drawString(s, x, menuRow, " ", style, width)
		for j, ch := range title {
			cs := style
			if j == 0 {
				cs = cs.Foreground(st.theme.MenuKey).Underline(true)
			}
			x = drawString(s, x, menuRow, string(ch), cs, width)
		}
		x = drawString(s, x, menuRow, " ", style, width)
		x++
	}
}

// drawRuler paints column numbers on the first ruler row and '|' ticks,
// '.' half-way marks and the cursor column on the second.
func drawRuler(s tcell.Screen, st renderState) {
	width, _ := s.Size()
	base := st.theme.RulerStyle()
	tick := base.Foreground(st.theme.RulerTick)
	for y := rulerTop; y < rulerTop+rulerHeight; y++ {
		fillRow(s, y, width, base)
	}
	span := max(st.span, 1)
	cols := (width + span - 1) / span
	extent := fixed.Int26_6(cols) * st.charWidth
	scroll := fixed.Int26_6(st.leftCol) * st.charWidth
	marks := ruler.Layout(extent, st.charWidth, scroll)
	for _, m := range marks {
		x := ruler.Cell(m.X, st.charWidth, span)
		if x >= width {
			continue
		}
		if m.Kind == ruler.Tick {
			s.SetContent(x, rulerTop+1, '|', nil, tick)
			drawString(s, x, rulerTop, m.Label, tick, width)
			continue
		}
		s.SetContent(x, rulerTop+1, '.', nil, base)
	}
	cx := (st.cursorCol - st.leftCol) * span
	if cx < 0 || cx >= width {
		return
	}
	cur := base.Foreground(st.theme.CursorText).Background(st.theme.CursorBG)
	for k := 0; k < span && cx+k < width; k++ {
		ch, _, _, _ := s.GetContent(cx+k, rulerTop+1)
		s.SetContent(cx+k, rulerTop+1, ch, nil, cur)
	}
}

func drawText(s tcell.Screen, st renderState) {
	width, _ := s.Size()
	text := st.theme.TextStyle().Bold(st.bold)
	sel := text.Foreground(st.theme.SelectionFG).Background(st.theme.SelectionBG)
	cur := text.Foreground(st.theme.CursorText).Background(st.theme.CursorBG)
	for row := 0; row < st.textRows; row++ {
		fillRow(s, textTop+row, width, text)
	}
	offset := 0
	for i := 0; i < st.topLine && i < len(st.lines); i++ {
		offset += len([]rune(st.lines[i])) + 1
	}
	for row := 0; row < st.textRows && st.topLine+row < len(st.lines); row++ {
		y := textTop + row
		runes := []rune(st.lines[st.topLine+row])
		dcol := 0
		for j, ch := range runes {
			w := runeCells(ch, dcol)
			style := text
			switch idx := offset + j; {
			case idx == st.cursor:
				style = cur
			case idx >= st.selStart && idx < st.selEnd:
				style = sel
			}
			drawColumns(s, y, dcol-st.leftCol, w, st.span, width, glyph(ch), style)
			dcol += w
		}
		if offset+len(runes) == st.cursor {
			drawColumns(s, y, dcol-st.leftCol, 1, st.span, width, ' ', cur)
		}
		offset += len(runes) + 1
	}
}

// drawColumns paints ch as w display columns starting at display column
// col of the visible area, each column span cells wide. A glyph cut by the
// left edge is drawn as blanks.
func drawColumns(s tcell.Screen, y, col, w, span, width int, ch rune, style tcell.Style) {
	span = max(span, 1)
	x0 := col * span
	gw := max(runewidth.RuneWidth(ch), 1)
	whole := x0 >= 0 && x0+gw <= width
	for k := 0; k < w*span; k++ {
		x := x0 + k
		if x < 0 || x >= width {
			continue
		}
		switch {
		case whole && k == 0:
			s.SetContent(x, y, ch, nil, style)
		case whole && k < gw:
		default:
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawMiniBuffer(s tcell.Screen, st renderState) {
	width, height := s.Size()
	style := st.theme.MiniStyle()
	top := height - 1 - len(st.miniBuf)
	for i, line := range st.miniBuf {
		y := top + i
		if y < textTop {
			continue
		}
		ls := style
		if st.miniErr && i == len(st.miniBuf)-1 {
			ls = ls.Foreground(st.theme.ErrorForeground)
		}
		fillRow(s, y, width, ls)
		drawString(s, 0, y, line, ls, width)
	}
}

// drawStatus shows the counters on the left and font and file name on the
// right; the counters win when the row is too narrow for both.
func drawStatus(s tcell.Screen, st renderState) {
	width, height := s.Size()
	y := height - 1
	style := st.theme.StatusStyle()
	fillRow(s, y, width, style)
	left := " " + st.status
	end := drawString(s, 0, y, left, style, width)
	right := st.info + " "
	rw := runewidth.StringWidth(right)
	if x := width - rw; x > end+1 {
		drawString(s, x, y, right, style, width)
	}
}

func drawHelp(s tcell.Screen, st renderState) {
	width, height := s.Size()
	style := st.theme.TextStyle()
	for y := 0; y < height; y++ {
		fillRow(s, y, width, style)
	}
	y := max((height-len(st.help))/2, 0)
	for i, line := range st.help {
		x := max((width-runewidth.StringWidth(line))/2, 0)
		drawString(s, x, y+i, line, style, width)
	}
}

// showDialog displays a message in the mini-buffer and waits for a key
// press before dismissing it.
func (r *Runner) showDialog(message string) {
	r.showDialogLines([]string{message}, false)
}

// showError is showDialog with the message in the error color.
func (r *Runner) showError(message string) {
	r.showDialogLines([]string{message}, true)
}

func (r *Runner) showDialogLines(lines []string, isErr bool) {
	if r.Screen == nil {
		return
	}
	if isErr {
		// miniErr colors the last line, so the hint goes first
		r.setMiniBuffer(append([]string{"Press any key to continue"}, lines...))
		r.miniErr = true
	} else {
		r.setMiniBuffer(append(lines, "Press any key to continue"))
	}
	r.draw()
	for {
		ev := r.waitEvent()
		if ev == nil {
			break
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			break
		}
	}
	r.clearMiniBuffer()
	r.draw()
}
