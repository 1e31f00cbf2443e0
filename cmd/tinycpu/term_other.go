//go:build !linux

package main

import (
	"errors"
	"os"
)

var errNoTerm = errors.New("terminal control not supported on this platform")

func enterRawTerm(f *os.File) (restore func() error, err error) {
	err = errNoTerm
	return
}

func termGeometry(f *os.File) (cols, rows int, err error) {
	err = errNoTerm
	return
}
