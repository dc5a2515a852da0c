// Package ruler computes the column guide drawn above the text area.
// Positions are in pixels of the active font, offset by the text area's
// horizontal scroll.
package ruler

import (
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Kind distinguishes labelled ticks from dots.
type Kind int

const (
	// Tick marks every 10th column and carries the column number.
	Tick Kind = iota
	// Dot marks the columns halfway between ticks.
	Dot
)

const (
	TickInterval = 10
	DotInterval  = 5
)

// Mark is one visible ruler mark.
type Mark struct {
	Column int
	X      fixed.Int26_6
	Kind   Kind
	Label  string
}

// Layout returns the marks visible in a ruler of the given width for text
// drawn with charWidth-wide columns and scrolled right by scroll.
func Layout(width, charWidth, scroll fixed.Int26_6) []Mark {
	if charWidth <= 0 || width <= 0 {
		return nil
	}
	if scroll < 0 {
		scroll = 0
	}
	first := int(scroll / charWidth)
	if rem := first % DotInterval; rem != 0 {
		first += DotInterval - rem
	}
	var marks []Mark
	for col := first; ; col += DotInterval {
		x := fixed.Int26_6(col)*charWidth - scroll
		if x >= width {
			break
		}
		if x < 0 {
			continue
		}
		m := Mark{Column: col, X: x, Kind: Dot}
		if col%TickInterval == 0 {
			m.Kind = Tick
			m.Label = strconv.Itoa(col)
		}
		marks = append(marks, m)
	}
	return marks
}

// Cell projects x onto a terminal grid where one column of charWidth pixels
// spans span cells.
func Cell(x, charWidth fixed.Int26_6, span int) int {
	if charWidth <= 0 {
		return 0
	}
	return int(x * fixed.Int26_6(span) / charWidth)
}
