package io

const (
	CELL_WIDTH  = 16 // Width of a character cell, in display units.
	LINE_HEIGHT = 24 // Height of a text line, in display units.
)

// Display is the character surface driven by a Console.
// Coordinates are in display units, with (0, 0) at the top left.
type Display interface {
	// Width of the surface.
	Width() int
	// Height of the surface.
	Height() int
	// DrawChar draws a character with its cell's top left corner at (x, y).
	DrawChar(x, y int, value byte) error
	// FillRect clears a rectangle of the surface.
	FillRect(x, y, width, height int) error
	// Clear the whole surface.
	Clear() error
}

// cellOf converts display units to a character cell.
func cellOf(x, y int) (col, row int) {
	return x / CELL_WIDTH, y / LINE_HEIGHT
}

// cellSpan returns the cells covered by a rectangle, clipped to cols x rows.
func cellSpan(x, y, width, height, cols, rows int) (col0, row0, col1, row1 int) {
	col0, row0 = cellOf(max(x, 0), max(y, 0))
	col0 = min(col0, cols)
	row0 = min(row0, rows)
	col1 = min((x+width+CELL_WIDTH-1)/CELL_WIDTH, cols)
	row1 = min((y+height+LINE_HEIGHT-1)/LINE_HEIGHT, rows)
	return
}
