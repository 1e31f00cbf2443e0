package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// enterRawTerm puts the terminal on f in raw mode, returning a function
// that restores it.
func enterRawTerm(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())

	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}

	saved := *termios
	state := rawTermios(saved)

	err = unix.IoctlSetTermios(fd, unix.TCSETS, &state)
	if err != nil {
		return
	}

	restore = func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, &saved)
	}

	return
}

// rawTermios returns state with line editing, echo and input translation
// disabled. ISIG stays set so Ctrl-C still cancels the run.
func rawTermios(state unix.Termios) unix.Termios {
	state.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	state.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	state.Cflag &^= unix.CSIZE | unix.PARENB
	state.Cflag |= unix.CS8

	// Block for at least one byte; the input pump reads on its own goroutine.
	state.Cc[unix.VMIN] = 1
	state.Cc[unix.VTIME] = 0

	return state
}

// termGeometry returns the size of the terminal on f, in characters.
func termGeometry(f *os.File) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return
	}

	cols = int(ws.Col)
	rows = int(ws.Row)

	return
}
