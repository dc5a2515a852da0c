package buffer

import (
	"fmt"
	"strings"
)

// GapBuffer holds the document text as runes with a movable gap at the
// last edit position. Positions are rune indices in [0, Len()].
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int

	cacheString string
	cacheLines  []string
	cacheValid  bool
}

const defaultGap = 128

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(capacity int) *GapBuffer {
	if capacity < 1 {
		capacity = defaultGap
	}
	return &GapBuffer{buf: make([]rune, capacity), gapEnd: capacity}
}

// NewGapBufferFromString initializes a GapBuffer with the provided text.
func NewGapBufferFromString(s string) *GapBuffer {
	runes := []rune(s)
	g := NewGapBuffer(len(runes) + defaultGap)
	copy(g.buf, runes)
	g.gapStart = len(runes)
	return g
}

func (g *GapBuffer) ensureGap(n int) {
	if g.gapEnd-g.gapStart >= n {
		return
	}
	newCap := len(g.buf)*2 + n
	newBuf := make([]rune, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	suffix := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-suffix:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - suffix
	g.buf = newBuf
}

// moveGap moves the gap so that gapStart == pos.
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
	case pos > g.gapStart:
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert inserts runes at position pos (0..Len()).
func (g *GapBuffer) Insert(pos int, s []rune) error {
	if pos < 0 || pos > g.Len() {
		return fmt.Errorf("insert at %d: position out of range [0,%d]", pos, g.Len())
	}
	if len(s) == 0 {
		return nil
	}
	g.moveGap(pos)
	g.ensureGap(len(s))
	copy(g.buf[g.gapStart:], s)
	g.gapStart += len(s)
	g.cacheValid = false
	return nil
}

// Delete removes runes in [start,end).
func (g *GapBuffer) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return fmt.Errorf("delete [%d,%d): invalid range for length %d", start, end, g.Len())
	}
	if start == end {
		return nil
	}
	g.moveGap(start)
	g.gapEnd += end - start
	g.cacheValid = false
	return nil
}

// Slice returns a copy of the runes in [start,end), clamped to the buffer.
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) - g.gapStart + g.gapEnd
		to := end - g.gapStart + g.gapEnd
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// Len returns the logical length (excluding gap).
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// RuneAt returns the rune at index i. If i is out of bounds, it returns 0.
func (g *GapBuffer) RuneAt(i int) rune {
	if i < 0 || i >= g.Len() {
		return 0
	}
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

// LineAt returns the rune start and end indices of line idx (0-based). The
// end index includes the terminating '\n' when present. Past the last line
// it returns the last line's bounds.
func (g *GapBuffer) LineAt(idx int) (start, end int) {
	if idx < 0 {
		idx = 0
	}
	n := g.Len()
	line := 0
	for i := 0; i < n; i++ {
		if g.RuneAt(i) != '\n' {
			continue
		}
		if line == idx {
			return start, i + 1
		}
		line++
		start = i + 1
	}
	return start, n
}

// LineCount returns the number of lines. An empty buffer has one line and a
// trailing newline opens a new, empty one.
func (g *GapBuffer) LineCount() int {
	return len(g.Lines())
}

// LineCol converts a rune offset into a 0-based line and column.
func (g *GapBuffer) LineCol(pos int) (line, col int) {
	if pos > g.Len() {
		pos = g.Len()
	}
	lineStart := 0
	for i := 0; i < pos; i++ {
		if g.RuneAt(i) == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, pos - lineStart
}

// Offset converts a 0-based line and column into a rune offset. The column
// is clamped to the line's length, excluding its newline.
func (g *GapBuffer) Offset(line, col int) int {
	start, end := g.LineAt(line)
	if end > start && g.RuneAt(end-1) == '\n' {
		end--
	}
	if col < 0 {
		col = 0
	}
	if start+col > end {
		return end
	}
	return start + col
}

// String returns the buffer contents. The result is cached until the buffer
// is modified.
func (g *GapBuffer) String() string {
	if g.cacheValid {
		return g.cacheString
	}
	var sb strings.Builder
	sb.Grow(g.Len())
	for _, r := range g.buf[:g.gapStart] {
		sb.WriteRune(r)
	}
	for _, r := range g.buf[g.gapEnd:] {
		sb.WriteRune(r)
	}
	g.cacheString = sb.String()
	g.cacheLines = strings.Split(g.cacheString, "\n")
	g.cacheValid = true
	return g.cacheString
}

// Lines returns the buffer split into lines. The result is cached until the
// buffer is modified.
func (g *GapBuffer) Lines() []string {
	if !g.cacheValid {
		_ = g.String()
	}
	return g.cacheLines
}
