// Package io provides the character I/O port of the tinycpu system.
//
// The CPU sees a Port: a non-blocking Input that is polled for one pending
// byte, and an Output that receives one character at a time. The Console
// output applies terminal semantics (carriage return, backspace, line wrap,
// scroll-by-clear) against a Display surface, while Queue and Pump provide
// input from scripted data and from live byte streams.
package io

// Input is a non-blocking source of bytes.
type Input interface {
	// Poll consumes and returns one pending byte, if any is available.
	Poll() (value byte, ok bool)
}

// Output is a sink of characters.
type Output interface {
	// Put sends a single character.
	Put(value byte) error
}

// Port is the complete I/O capability consumed by the CPU.
type Port interface {
	Input
	Output
}

// Device joins an Input and an Output into a Port. Either may be nil: a nil
// Input never has a pending byte and a nil Output discards characters.
type Device struct {
	Input  Input
	Output Output
}

var _ Port = (*Device)(nil)

// Poll the Input.
func (dev *Device) Poll() (value byte, ok bool) {
	if dev.Input == nil {
		return
	}
	return dev.Input.Poll()
}

// Put a character to the Output.
func (dev *Device) Put(value byte) (err error) {
	if dev.Output == nil {
		return
	}
	return dev.Output.Put(value)
}
