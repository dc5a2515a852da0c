// Package status derives the status bar counters from the document.
package status

import (
	"fmt"
	"strings"

	"example.com/simpleeditor/pkg/buffer"
)

// Counters are the live document statistics shown in the status bar.
// Line and Column are 1-based; Column counts runes.
type Counters struct {
	Line   int
	Column int
	Lines  int
	Words  int
	Bytes  int
}

// Compute derives the counters for text with the cursor at rune offset
// cursor. Offsets past the end are clamped.
func Compute(text string, cursor int) Counters {
	c := Counters{
		Line:   1,
		Column: 1,
		Lines:  strings.Count(text, "\n") + 1,
		Words:  buffer.WordCount(text),
		Bytes:  len(text),
	}
	i := 0
	for _, r := range text {
		if i >= cursor {
			break
		}
		if r == '\n' {
			c.Line++
			c.Column = 1
		} else {
			c.Column++
		}
		i++
	}
	return c
}

// FromBuffer computes the counters for a gap buffer.
func FromBuffer(g *buffer.GapBuffer, cursor int) Counters {
	if g == nil {
		return Compute("", 0)
	}
	return Compute(g.String(), cursor)
}

func (c Counters) String() string {
	return fmt.Sprintf("Ln %d, Col %d | Lines %d | Words %d | %s", c.Line, c.Column, c.Lines, c.Words, formatBytes(c.Bytes))
}

func formatBytes(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}

