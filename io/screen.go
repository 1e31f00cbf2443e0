package io

import (
	"strings"
)

// Screen is an in-memory Display: a grid of character cells.
type Screen struct {
	Cols int // Width in cells.
	Rows int // Height in cells.

	Cell  [][]byte // Cell contents, indexed [row][col]. Zero is blank.
	Draws int      // Count of characters drawn.
}

var _ Display = (*Screen)(nil)

// NewScreen creates a blank screen of cols x rows cells.
func NewScreen(cols, rows int) (screen *Screen) {
	screen = &Screen{Cols: cols, Rows: rows}
	screen.Clear()

	return
}

func (screen *Screen) Width() int {
	return screen.Cols * CELL_WIDTH
}

func (screen *Screen) Height() int {
	return screen.Rows * LINE_HEIGHT
}

// DrawChar stores the character in the cell at (x, y).
func (screen *Screen) DrawChar(x, y int, value byte) (err error) {
	if x < 0 || y < 0 {
		return
	}

	col, row := cellOf(x, y)
	if col >= screen.Cols || row >= screen.Rows {
		return
	}

	screen.Cell[row][col] = value
	screen.Draws++

	return
}

// FillRect blanks every cell overlapped by the rectangle.
func (screen *Screen) FillRect(x, y, width, height int) (err error) {
	col0, row0, col1, row1 := cellSpan(x, y, width, height, screen.Cols, screen.Rows)
	for row := row0; row < row1; row++ {
		clear(screen.Cell[row][col0:max(col0, col1)])
	}

	return
}

// Clear blanks the whole screen.
func (screen *Screen) Clear() (err error) {
	screen.Cell = make([][]byte, screen.Rows)
	for row := range screen.Cell {
		screen.Cell[row] = make([]byte, screen.Cols)
	}

	return
}

// At returns the character in a cell, or zero when out of range.
func (screen *Screen) At(col, row int) byte {
	if col < 0 || row < 0 || col >= screen.Cols || row >= screen.Rows {
		return 0
	}
	return screen.Cell[row][col]
}

// String renders the screen, one line per row, blanks as spaces and
// trailing blanks trimmed.
func (screen *Screen) String() string {
	lines := make([]string, len(screen.Cell))
	for row, cells := range screen.Cell {
		line := make([]byte, len(cells))
		for col, value := range cells {
			if value == 0 {
				value = ' '
			}
			line[col] = value
		}
		lines[row] = strings.TrimRight(string(line), " ")
	}

	return strings.Join(lines, "\n")
}
