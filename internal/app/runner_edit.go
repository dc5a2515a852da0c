package app

import (
	"strings"

	"example.com/simpleeditor/pkg/buffer"
)

func (r *Runner) buf() *buffer.GapBuffer {
	if r.Buf == nil {
		r.Buf = buffer.NewGapBuffer(0)
	}
	return r.Buf
}

// selection returns the selected rune range; ok is false when nothing is
// selected.
func (r *Runner) selection() (start, end int, ok bool) {
	if !r.Selecting || r.Anchor == r.Cursor {
		return 0, 0, false
	}
	start, end = r.Anchor, r.Cursor
	if start > end {
		start, end = end, start
	}
	n := r.buf().Len()
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	return start, end, start < end
}

func (r *Runner) selectedText() string {
	start, end, ok := r.selection()
	if !ok {
		return ""
	}
	return string(r.buf().Slice(start, end))
}

func (r *Runner) clearSelection() {
	r.Selecting = false
}

// moveCursor places the cursor at pos, extending the selection when extend
// is set and dropping it otherwise.
func (r *Runner) moveCursor(pos int, extend bool) {
	pos = min(max(pos, 0), r.buf().Len())
	if extend {
		if !r.Selecting {
			r.Selecting = true
			r.Anchor = r.Cursor
		}
	} else {
		r.Selecting = false
	}
	r.Cursor = pos
}

// insertText inserts text at the cursor, replacing any selection, records
// history, and updates state.
func (r *Runner) insertText(text string) {
	r.deleteSelection()
	if text == "" {
		return
	}
	if err := r.buf().Insert(r.Cursor, []rune(text)); err != nil {
		r.Logger.Error("edit.error", err, map[string]any{"op": "insert", "cursor": r.Cursor})
		return
	}
	if r.History != nil {
		r.History.RecordInsert(r.Cursor, text)
	}
	r.Cursor += len([]rune(text))
	r.hasGoal = false
	r.Dirty = true
}

// deleteRange deletes [start,end), records history and updates the cursor.
func (r *Runner) deleteRange(start, end int) error {
	b := r.buf()
	start = max(start, 0)
	end = min(end, b.Len())
	if start >= end {
		return nil
	}
	text := string(b.Slice(start, end))
	if err := b.Delete(start, end); err != nil {
		return err
	}
	if r.History != nil {
		r.History.RecordDelete(start, text)
	}
	if r.Cursor > end {
		r.Cursor -= end - start
	} else if r.Cursor > start {
		r.Cursor = start
	}
	r.Selecting = false
	r.hasGoal = false
	r.Dirty = true
	return nil
}

// deleteSelection removes the selected text; it reports whether anything
// was selected.
func (r *Runner) deleteSelection() bool {
	start, end, ok := r.selection()
	r.clearSelection()
	if !ok {
		return false
	}
	if err := r.deleteRange(start, end); err != nil {
		r.Logger.Error("edit.error", err, map[string]any{"op": "delete", "start": start, "end": end})
	}
	return true
}

func (r *Runner) backspace() {
	if r.deleteSelection() || r.Cursor == 0 {
		return
	}
	_ = r.deleteRange(r.Cursor-1, r.Cursor)
}

func (r *Runner) deleteForward() {
	if r.deleteSelection() || r.Cursor >= r.buf().Len() {
		return
	}
	_ = r.deleteRange(r.Cursor, r.Cursor+1)
}

func (r *Runner) selectAll() {
	r.Selecting = true
	r.Anchor = 0
	r.Cursor = r.buf().Len()
}

// copySelection copies the selection to the clipboard. Without a selection
// it does nothing.
func (r *Runner) copySelection() bool {
	text := r.selectedText()
	if text == "" {
		return false
	}
	_ = r.clip().WriteAll(text)
	r.Logger.Event("action", map[string]any{"name": "copy", "runes": len([]rune(text))})
	return true
}

func (r *Runner) cutSelection() {
	if !r.copySelection() {
		return
	}
	r.deleteSelection()
	r.Logger.Event("action", map[string]any{"name": "cut", "cursor": r.Cursor, "buffer_len": r.buf().Len()})
}

func (r *Runner) paste() {
	text, err := r.clip().ReadAll()
	if err != nil || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	r.insertText(text)
	r.Logger.Event("action", map[string]any{"name": "paste", "cursor": r.Cursor, "buffer_len": r.buf().Len()})
}

func (r *Runner) undo() {
	if r.History == nil {
		return
	}
	if err := r.History.Undo(r.buf(), &r.Cursor); err != nil {
		return
	}
	r.clearSelection()
	r.hasGoal = false
	r.Dirty = !r.History.AtSaved()
	r.Logger.Event("action", map[string]any{"name": "undo", "cursor": r.Cursor, "buffer_len": r.buf().Len()})
}

func (r *Runner) redo() {
	if r.History == nil {
		return
	}
	if err := r.History.Redo(r.buf(), &r.Cursor); err != nil {
		return
	}
	r.clearSelection()
	r.hasGoal = false
	r.Dirty = !r.History.AtSaved()
	r.Logger.Event("action", map[string]any{"name": "redo", "cursor": r.Cursor, "buffer_len": r.buf().Len()})
}

// cursorLineCol returns the cursor's 0-based line and rune column.
func (r *Runner) cursorLineCol() (line, col int) {
	return r.buf().LineCol(r.Cursor)
}

func (r *Runner) lineRunes(line int) []rune {
	lines := r.buf().Lines()
	if line < 0 || line >= len(lines) {
		return nil
	}
	return []rune(lines[line])
}

// cursorDisplayCol is the display column of the cursor within its line.
func (r *Runner) cursorDisplayCol() int {
	line, col := r.cursorLineCol()
	return displayColumn(r.lineRunes(line), col)
}

// moveCursorVertical moves the cursor up or down by delta lines, keeping
// the display column it had before the first vertical move.
func (r *Runner) moveCursorVertical(delta int, extend bool) {
	b := r.buf()
	line, _ := r.cursorLineCol()
	if !r.hasGoal {
		r.goalCol = r.cursorDisplayCol()
	}
	target := min(max(line+delta, 0), b.LineCount()-1)
	var pos int
	switch {
	case line+delta < 0:
		pos = 0
	case line+delta > b.LineCount()-1:
		pos = b.Len()
	default:
		pos = b.Offset(target, runeColumnAt(r.lineRunes(target), r.goalCol))
	}
	r.moveCursor(pos, extend)
	r.hasGoal = true
}

func (r *Runner) moveCursorHorizontal(delta int, extend bool) {
	if _, _, ok := r.selection(); ok && !extend {
		start, end, _ := r.selection()
		if delta < 0 {
			r.moveCursor(start, false)
		} else {
			r.moveCursor(end, false)
		}
	} else {
		r.moveCursor(r.Cursor+delta, extend)
	}
	r.hasGoal = false
}

func (r *Runner) moveLineStart(extend bool) {
	line, _ := r.cursorLineCol()
	r.moveCursor(r.buf().Offset(line, 0), extend)
	r.hasGoal = false
}

func (r *Runner) moveLineEnd(extend bool) {
	line, _ := r.cursorLineCol()
	r.moveCursor(r.buf().Offset(line, len(r.lineRunes(line))), extend)
	r.hasGoal = false
}

func (r *Runner) moveTo(pos int, extend bool) {
	r.moveCursor(pos, extend)
	r.hasGoal = false
}

// gotoLine moves the cursor to the start of 1-based line n, clamped to the
// document.
func (r *Runner) gotoLine(n int) {
	b := r.buf()
	n = min(max(n, 1), b.LineCount())
	r.moveTo(b.Offset(n-1, 0), false)
}

// ensureCursorVisible scrolls so the cursor is inside the text area.
func (r *Runner) ensureCursorVisible() {
	if r.Screen == nil {
		return
	}
	rows := r.textRows()
	line, _ := r.cursorLineCol()
	if line < r.TopLine {
		r.TopLine = line
	}
	if rows > 0 && line >= r.TopLine+rows {
		r.TopLine = line - rows + 1
	}
	r.TopLine = max(r.TopLine, 0)

	cols := r.visibleColumns()
	dcol := r.cursorDisplayCol()
	if dcol < r.LeftCol {
		r.LeftCol = dcol
	}
	if cols > 0 && dcol >= r.LeftCol+cols {
		r.LeftCol = dcol - cols + 1
	}
	r.LeftCol = max(r.LeftCol, 0)
}
