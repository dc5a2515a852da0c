package app

import "github.com/mattn/go-runewidth"

// tabWidth is the distance between tab stops in display columns.
const tabWidth = 4

// runeCells returns the display columns taken by r when it starts at col.
func runeCells(r rune, col int) int {
	if r == '\t' {
		return tabWidth - col%tabWidth
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	// control characters and lone combining marks get a visible cell
	return 1
}

// displayColumn returns the display column at which rune index runeCol of
// line starts.
func displayColumn(line []rune, runeCol int) int {
	col := 0
	for i := 0; i < runeCol && i < len(line); i++ {
		col += runeCells(line[i], col)
	}
	return col
}

// runeColumnAt returns the rune index whose cells cover display column
// dcol, or len(line) when dcol is past the end.
func runeColumnAt(line []rune, dcol int) int {
	col := 0
	for i, r := range line {
		w := runeCells(r, col)
		if dcol < col+w {
			return i
		}
		col += w
	}
	return len(line)
}

// glyph is the rune drawn for r in the text area.
func glyph(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r < ' ' || r == 0x7f:
		return '?'
	}
	return r
}
