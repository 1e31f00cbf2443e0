package main

import (
	"log"

	"github.com/pkg/term"
)

// openSerial opens a serial line in raw mode at the given speed.
func openSerial(dev string, baud int, verbose bool) (port *term.Term, err error) {
	port, err = term.Open(dev, term.Speed(baud), term.RawMode)
	if err != nil {
		return
	}

	if verbose {
		log.Printf("serial: %v at %d baud", dev, baud)
	}

	return
}
