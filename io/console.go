package io

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
)

const (
	CHAR_BS = 8  // Backspace.
	CHAR_LF = 10 // Line feed.
	CHAR_CR = 13 // Carriage return.
)

var _console_defines = map[string]string{
	"CELL_WIDTH":  fmt.Sprintf("%d", CELL_WIDTH),
	"LINE_HEIGHT": fmt.Sprintf("%d", LINE_HEIGHT),
	"CHAR_BS":     fmt.Sprintf("%d", CHAR_BS),
	"CHAR_LF":     fmt.Sprintf("%d", CHAR_LF),
	"CHAR_CR":     fmt.Sprintf("%d", CHAR_CR),
}

// Console is an Output with terminal semantics on a Display.
//
// The cursor (X, Y) is in display units. Carriage return and line feed
// start a new line, backspace erases the previous cell (moving up a line if
// needed), and printable characters are drawn and advance the cursor.
// Lines wrap at the display width, and running off the bottom of the
// display clears it and restarts at the top.
type Console struct {
	Verbose bool
	Display Display   // Character surface.
	Echo    io.Writer // If set, receives a copy of every printable character.

	X int // Cursor column, in display units.
	Y int // Cursor row, in display units.
}

var _ Output = (*Console)(nil)

// NewConsole creates a console on a display, with the cursor at the top left.
func NewConsole(display Display) (con *Console) {
	con = &Console{Display: display}

	return
}

// Defines returns an iter of defines for the console.
func (con *Console) Defines() iter.Seq2[string, string] {
	return maps.All(_console_defines)
}

// Home moves the cursor to the top left and clears the display.
func (con *Console) Home() (err error) {
	con.X = 0
	con.Y = 0
	if con.Display == nil {
		err = ErrDisplayMissing
		return
	}
	return con.Display.Clear()
}

// Put applies one character to the console.
func (con *Console) Put(value byte) (err error) {
	display := con.Display
	if display == nil {
		err = ErrDisplayMissing
		return
	}

	width := display.Width()
	height := display.Height()
	if width < CELL_WIDTH || height < LINE_HEIGHT {
		err = ErrDisplayGeometry
		return
	}

	// An echo failure is reported only after the cursor has wrapped.
	var echoErr error

	switch {
	case value == CHAR_CR || value == CHAR_LF:
		con.X = 0
		con.Y += LINE_HEIGHT
	case value == CHAR_BS:
		con.X -= CELL_WIDTH
		if con.X < 0 && con.Y > 0 {
			con.Y -= LINE_HEIGHT
			con.X = width - CELL_WIDTH
		} else if con.X < 0 {
			con.X = 0
		}
		err = display.FillRect(con.X, con.Y, CELL_WIDTH, LINE_HEIGHT)
	case value >= ' ':
		err = display.DrawChar(con.X, con.Y, value)
		if err != nil {
			return
		}
		con.X += CELL_WIDTH
		if con.Echo != nil {
			_, echoErr = con.Echo.Write([]byte{value})
		}
	}

	if err != nil {
		return
	}

	if con.X >= width {
		con.X = 0
		con.Y += LINE_HEIGHT
	}

	if con.Y >= height {
		if con.Verbose {
			log.Printf("console: scroll")
		}
		con.Y = 0
		err = display.Clear()
		if err != nil {
			return
		}
	}

	err = echoErr

	return
}
