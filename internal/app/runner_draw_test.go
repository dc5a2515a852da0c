package app

import (
	"fmt"
	"strings"
	"testing"

	"example.com/simpleeditor/pkg/buffer"
	"example.com/simpleeditor/pkg/clipboard"
	"example.com/simpleeditor/pkg/typeface"
	"github.com/gdamore/tcell/v2"
)

func newScreenRunner(t *testing.T, text string) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(80, 24)
	r := New(nil)
	r.Screen = s
	r.Clipboard = &clipboard.Local{}
	r.Buf = buffer.NewGapBufferFromString(text)
	return r, s
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func cellAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func TestDraw_StatusBar(t *testing.T) {
	r, s := newScreenRunner(t, "a b  c")
	r.draw()
	row := rowText(s, 23)
	want := " Ln 1, Col 1 | Lines 1 | Words 3 | 6 bytes"
	if !strings.HasPrefix(row, want) {
		t.Fatalf("expected status %q, got %q", want, row)
	}
	if !strings.Contains(row, "Go Mono 12  Untitled") {
		t.Fatalf("expected font and file name in status, got %q", row)
	}
	if strings.Contains(row, "[+]") {
		t.Fatalf("clean buffer should not show the dirty flag: %q", row)
	}

	r.handleKeyEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	typeText(r, "\nd")
	row = rowText(s, 23)
	want = " Ln 2, Col 2 | Lines 2 | Words 4 | 8 bytes"
	if !strings.HasPrefix(row, want) {
		t.Fatalf("expected status %q after typing, got %q", want, row)
	}
	if !strings.Contains(row, "Untitled [+]") {
		t.Fatalf("expected dirty flag after typing, got %q", row)
	}
}

func TestDraw_MenuBar(t *testing.T) {
	r, s := newScreenRunner(t, "")
	r.draw()
	row := rowText(s, menuRow)
	for _, title := range []string{" File ", " Edit ", " Settings ", " Help "} {
		if !strings.Contains(row, title) {
			t.Fatalf("expected menu bar to contain %q, got %q", title, row)
		}
	}
}

func TestDraw_RulerMarks(t *testing.T) {
	r, s := newScreenRunner(t, "")
	r.draw()
	for x, want := range map[int]rune{0: '|', 5: '.', 10: '|', 15: '.', 20: '|'} {
		if got := cellAt(s, x, rulerTop+1); got != want {
			t.Fatalf("expected %q at ruler cell %d, got %q", want, x, got)
		}
	}
	if got := rowText(s, rulerTop)[10:12]; got != "10" {
		t.Fatalf("expected label 10 at cell 10, got %q", got)
	}
	if got := cellAt(s, 3, rulerTop+1); got != ' ' {
		t.Fatalf("expected no mark at cell 3, got %q", got)
	}
}

func TestDraw_RulerFollowsFontSize(t *testing.T) {
	r, s := newScreenRunner(t, "hi")
	r.draw()
	if got := cellAt(s, 10, rulerTop+1); got != '|' {
		t.Fatalf("expected tick at cell 10 with the base font, got %q", got)
	}
	if err := r.SetFont(typeface.Font{Family: "Go Mono", Size: 24}); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	r.draw()
	if got := cellAt(s, 20, rulerTop+1); got != '|' {
		t.Fatalf("expected tick for column 10 at cell 20, got %q", got)
	}
	if got := rowText(s, rulerTop)[20:22]; got != "10" {
		t.Fatalf("expected label 10 at cell 20, got %q", got)
	}
	if got := cellAt(s, 10, rulerTop+1); got != '.' {
		t.Fatalf("expected dot for column 5 at cell 10, got %q", got)
	}
	// the text area uses the same span
	if cellAt(s, 0, textTop) != 'h' || cellAt(s, 2, textTop) != 'i' {
		t.Fatalf("expected text drawn two cells per column, got %q", rowText(s, textTop))
	}
}

func TestDraw_RulerFollowsScroll(t *testing.T) {
	r, s := newScreenRunner(t, strings.Repeat("x", 100))
	r.Cursor = 85
	r.draw()
	if r.LeftCol != 6 {
		t.Fatalf("expected LeftCol 6 to keep the cursor visible, got %d", r.LeftCol)
	}
	if got := cellAt(s, 4, rulerTop+1); got != '|' {
		t.Fatalf("expected tick for column 10 at cell 4, got %q", got)
	}
	if got := rowText(s, rulerTop)[4:6]; got != "10" {
		t.Fatalf("expected label 10 at cell 4, got %q", got)
	}
	if got := cellAt(s, 14, rulerTop+1); got != '|' {
		t.Fatalf("expected tick for column 20 at cell 14, got %q", got)
	}
}

func TestDraw_RulerHighlightsCursorColumn(t *testing.T) {
	r, s := newScreenRunner(t, "abcdefg")
	r.Cursor = 3
	r.draw()
	_, _, style, _ := s.GetContent(3, rulerTop+1)
	_, bg, _ := style.Decompose()
	if bg != r.Theme.CursorBG {
		t.Fatalf("expected cursor column highlighted on the ruler, got background %v", bg)
	}
}

func TestDraw_Viewport(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	r, s := newScreenRunner(t, strings.Join(lines, "\n"))
	r.gotoLine(31)
	r.draw()
	// 20 text rows: line 30 must be the last visible one
	if r.TopLine != 11 {
		t.Fatalf("expected TopLine 11, got %d", r.TopLine)
	}
	if got := rowText(s, textTop); !strings.HasPrefix(got, "line 11") {
		t.Fatalf("expected first text row to show line 11, got %q", got)
	}
	if got := rowText(s, 22); !strings.HasPrefix(got, "line 30") {
		t.Fatalf("expected last text row to show line 30, got %q", got)
	}
}

func TestDraw_TabsAndWideRunes(t *testing.T) {
	r, s := newScreenRunner(t, "\tx\n世y")
	r.Cursor = r.Buf.Len()
	r.draw()
	if got := cellAt(s, 4, textTop); got != 'x' {
		t.Fatalf("expected 'x' after a tab at cell 4, got %q", got)
	}
	if got := cellAt(s, 0, textTop+1); got != '世' {
		t.Fatalf("expected wide rune at cell 0, got %q", got)
	}
	if got := cellAt(s, 2, textTop+1); got != 'y' {
		t.Fatalf("expected 'y' at cell 2 after a wide rune, got %q", got)
	}
}

func TestDraw_Selection(t *testing.T) {
	r, s := newScreenRunner(t, "hello")
	r.Cursor = 1
	r.moveCursor(4, true)
	r.draw()
	_, _, style, _ := s.GetContent(2, textTop)
	if _, bg, _ := style.Decompose(); bg != r.Theme.SelectionBG {
		t.Fatalf("expected selected cell background %v, got %v", r.Theme.SelectionBG, bg)
	}
	_, _, style, _ = s.GetContent(0, textTop)
	if _, bg, _ := style.Decompose(); bg == r.Theme.SelectionBG {
		t.Fatalf("expected cell 0 outside the selection")
	}
}

func TestDraw_BoldWeight(t *testing.T) {
	r, s := newScreenRunner(t, "a")
	if err := r.SetFont(typeface.Font{Family: "Go Mono", Size: 12, Weight: typeface.Bold}); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	r.Cursor = 1
	r.draw()
	_, _, style, _ := s.GetContent(0, textTop)
	if _, _, attr := style.Decompose(); attr&tcell.AttrBold == 0 {
		t.Fatalf("expected bold text for a bold font")
	}
}

func TestDraw_MiniBuffer(t *testing.T) {
	r, s := newScreenRunner(t, "hello")
	r.setMiniBuffer([]string{"mini", "buffer"})
	r.draw()
	if got := rowText(s, 21); !strings.HasPrefix(got, "mini") {
		t.Fatalf("expected mini-buffer first line above status, got %q", got)
	}
	if got := rowText(s, 22); !strings.HasPrefix(got, "buffer") {
		t.Fatalf("expected mini-buffer second line, got %q", got)
	}
	if got := rowText(s, 23); !strings.HasPrefix(got, " Ln 1") {
		t.Fatalf("expected status bar on the last row, got %q", got)
	}
}

func TestDraw_Help(t *testing.T) {
	r, s := newScreenRunner(t, "")
	r.ShowHelp = true
	r.draw()
	_, h := s.Size()
	found := false
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), "Ctrl+S") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected help screen to list Ctrl+S")
	}
}

func TestDraw_RenderChannel(t *testing.T) {
	r, _ := newScreenRunner(t, "one two")
	r.RenderCh = make(chan renderState, 1)
	r.FilePath = "/tmp/notes.txt"
	r.draw()
	st := <-r.RenderCh
	if st.title != "notes.txt" {
		t.Fatalf("expected title notes.txt, got %q", st.title)
	}
	if st.status != "Ln 1, Col 1 | Lines 1 | Words 2 | 7 bytes" {
		t.Fatalf("unexpected status %q", st.status)
	}
	if st.span != 1 || st.charWidth <= 0 {
		t.Fatalf("expected base font metrics, got span=%d width=%v", st.span, st.charWidth)
	}
}
