package io

import (
	"context"
	"io"
	"log"
)

const (
	PUMP_DEPTH = 256 // Bytes buffered between the reader and the poller.
)

// Pump provides non-blocking input from a blocking byte stream, such as a
// terminal or a serial line. A goroutine reads the stream into a buffered
// channel; Poll never waits on it.
type Pump struct {
	Verbose bool
	Input   io.Reader

	pending chan byte
}

var _ Input = (*Pump)(nil)

// Start reading the Input until ctx is done or the Input ends.
func (pump *Pump) Start(ctx context.Context) {
	pending := make(chan byte, PUMP_DEPTH)
	pump.pending = pending

	go func() {
		defer close(pending)

		var one [1]byte
		for {
			_, err := io.ReadFull(pump.Input, one[:])
			if err != nil {
				if pump.Verbose && err != io.EOF {
					log.Printf("pump: %v", err)
				}
				return
			}
			select {
			case pending <- one[0]:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Poll returns the next byte read from the Input, if one has arrived.
func (pump *Pump) Poll() (value byte, ok bool) {
	select {
	case value, ok = <-pump.pending:
	default:
	}

	return
}
