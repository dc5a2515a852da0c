package history

import (
	"errors"
	"fmt"

	"example.com/simpleeditor/pkg/buffer"
)

// ErrEmpty is returned by Undo and Redo when there is nothing to apply.
var ErrEmpty = errors.New("history: nothing to apply")

// OpType represents the type of an edit operation.
type OpType int

const (
	InsertOp OpType = iota
	DeleteOp
)

// Operation captures a single edit for undo/redo.
// Pos is a rune index; Text is the inserted/deleted text.
type Operation struct {
	Type OpType
	Pos  int
	Text string
}

func (op Operation) end() int { return op.Pos + len([]rune(op.Text)) }

// History keeps stacks of past/future operations for undo/redo.
type History struct {
	past   []Operation
	future []Operation
	saved  int // len(past) at the last MarkSaved, -1 once unreachable
}

// New creates an empty History.
func New() *History { return &History{} }

// Reset drops all recorded operations, e.g. after a new document is loaded.
func (h *History) Reset() {
	h.past = nil
	h.future = nil
	h.saved = 0
}

// MarkSaved records the current state as the one written to disk.
func (h *History) MarkSaved() { h.saved = len(h.past) }

// AtSaved reports whether undo and redo have returned the document to the
// state recorded by the last MarkSaved (or Reset).
func (h *History) AtSaved() bool { return h.saved == len(h.past) }

// branch drops the redo stack before a new edit. A save point that lived
// on the dropped branch can no longer be reached.
func (h *History) branch() {
	if h.saved > len(h.past) {
		h.saved = -1
	}
	h.future = nil
}

// RecordInsert records an insertion at pos. Consecutive single-line typing
// is merged into one operation so undo removes a typed run at once.
func (h *History) RecordInsert(pos int, text string) {
	if text == "" {
		return
	}
	h.branch()
	if n := len(h.past); n > 0 && n != h.saved {
		last := &h.past[n-1]
		if last.Type == InsertOp && last.end() == pos && text != "\n" && last.Text[len(last.Text)-1] != '\n' {
			last.Text += text
			return
		}
	}
	h.past = append(h.past, Operation{Type: InsertOp, Pos: pos, Text: text})
}

// RecordDelete records a deletion at pos of the given text.
func (h *History) RecordDelete(pos int, text string) {
	if text == "" {
		return
	}
	h.branch()
	h.past = append(h.past, Operation{Type: DeleteOp, Pos: pos, Text: text})
}

// CanUndo reports whether there is an operation to undo.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether there is an operation to redo.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Undo applies the inverse of the last operation to buf and updates the cursor.
func (h *History) Undo(buf buffer.TextStorage, cursor *int) error {
	if !h.CanUndo() {
		return ErrEmpty
	}
	op := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	if err := apply(buf, op, true, cursor); err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	h.future = append(h.future, op)
	return nil
}

// Redo reapplies the next operation to buf and updates the cursor.
func (h *History) Redo(buf buffer.TextStorage, cursor *int) error {
	if !h.CanRedo() {
		return ErrEmpty
	}
	op := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	if err := apply(buf, op, false, cursor); err != nil {
		return fmt.Errorf("redo: %w", err)
	}
	h.past = append(h.past, op)
	return nil
}

// apply performs op (or its inverse) and leaves the cursor after the
// inserted text or at the start of the removed text.
func apply(buf buffer.TextStorage, op Operation, inverse bool, cursor *int) error {
	insert := op.Type == InsertOp
	if inverse {
		insert = !insert
	}
	if insert {
		if err := buf.Insert(op.Pos, []rune(op.Text)); err != nil {
			return err
		}
		if cursor != nil {
			*cursor = op.end()
		}
		return nil
	}
	if err := buf.Delete(op.Pos, op.end()); err != nil {
		return err
	}
	if cursor != nil {
		*cursor = op.Pos
	}
	return nil
}
