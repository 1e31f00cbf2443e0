package io

import (
	"fmt"
	"io"
)

// Terminal is a Display on an ANSI terminal: each character cell maps to
// one terminal cell.
type Terminal struct {
	Output io.Writer // ANSI terminal output.
	Cols   int       // Width in cells.
	Rows   int       // Height in cells.
}

var _ Display = (*Terminal)(nil)

func (term *Terminal) Width() int {
	return term.Cols * CELL_WIDTH
}

func (term *Terminal) Height() int {
	return term.Rows * LINE_HEIGHT
}

func (term *Terminal) moveTo(col, row int) (err error) {
	_, err = fmt.Fprintf(term.Output, "\x1b[%d;%dH", row+1, col+1)
	return
}

// DrawChar writes the character at the cell holding (x, y).
// Characters outside of printable ASCII are shown as '?'.
func (term *Terminal) DrawChar(x, y int, value byte) (err error) {
	if x < 0 || y < 0 {
		return
	}

	col, row := cellOf(x, y)
	if col >= term.Cols || row >= term.Rows {
		return
	}

	if value < ' ' || value > '~' {
		value = '?'
	}

	err = term.moveTo(col, row)
	if err != nil {
		return
	}

	_, err = term.Output.Write([]byte{value})
	return
}

// FillRect writes spaces over every cell overlapped by the rectangle.
func (term *Terminal) FillRect(x, y, width, height int) (err error) {
	col0, row0, col1, row1 := cellSpan(x, y, width, height, term.Cols, term.Rows)
	for row := row0; row < row1; row++ {
		if col1 <= col0 {
			break
		}
		err = term.moveTo(col0, row)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(term.Output, "%*s", col1-col0, "")
		if err != nil {
			return
		}
	}

	return
}

// Clear erases the terminal and homes the cursor.
func (term *Terminal) Clear() (err error) {
	_, err = io.WriteString(term.Output, "\x1b[2J\x1b[H")
	return
}
