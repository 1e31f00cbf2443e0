// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator ties the CPU, its console and its program sources
// together into a runnable machine.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/tinycpu/cpu"
	"github.com/ezrec/tinycpu/image"
	"github.com/ezrec/tinycpu/internal"
	tio "github.com/ezrec/tinycpu/io"
	"github.com/ezrec/tinycpu/loader"
)

const (
	SCREEN_WIDTH  = 320 // Width of the reference panel, in display units.
	SCREEN_HEIGHT = 240 // Height of the reference panel, in display units.
)

var _emulator_defines = map[string]string{
	"SCREEN_WIDTH":  fmt.Sprintf("%d", SCREEN_WIDTH),
	"SCREEN_HEIGHT": fmt.Sprintf("%d", SCREEN_HEIGHT),
}

// Emulator state. CPU + console + input.
type Emulator struct {
	Verbose  bool        // If set, enables verbose logging. Copied to the Cpu on every Tick.
	Logger   *log.Logger // Destination of diagnostics. If nil, the standard logger. Copied to the Cpu on every Tick.
	Limit    int         // If non-zero, the maximum number of ticks since a reset.
	*cpu.Cpu             // Reference to the CPU simulation.

	Console *tio.Console // Output side of the CPU port.
	Input   tio.Input    // Input side of the CPU port.
}

// NewEmulator creates a new emulator drawing on display and reading input.
// Either may be nil.
func NewEmulator(display tio.Display, input tio.Input) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Console: tio.NewConsole(display),
		Input:   input,
	}

	emu.Cpu.Port = &tio.Device{Input: input, Output: emu.Console}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Console.Defines(),
	)
}

// Reset the machine to its power-on state, and clear the display.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if emu.Console.Display != nil {
		err = emu.Console.Home()
	}

	return
}

// Load a framed program stream into memory.
func (emu *Emulator) Load(r io.Reader) (size int, err error) {
	ld := &loader.Loader{
		Verbose: emu.Verbose,
		Logger:  emu.Logger,
	}

	size, err = ld.Load(r, &emu.Cpu.Memory)

	return
}

// LoadImage copies a raw program image into memory at offset zero.
func (emu *Emulator) LoadImage(program []byte) (err error) {
	if len(program) > cpu.MEMORY_SIZE {
		err = ErrImageSize
		return
	}

	if emu.Verbose {
		log.Printf("emulator: image of %d bytes", len(program))
	}

	copy(emu.Cpu.Memory[:], program)

	return
}

// Compile an image script with the emulator defines, and load it.
func (emu *Emulator) Compile(filename string, src any) (program []byte, err error) {
	sc := &image.Script{
		Verbose: emu.Verbose,
		Defines: emu.Defines(),
	}

	program, err = sc.Compile(filename, src)
	if err != nil {
		return
	}

	err = emu.LoadImage(program)

	return
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
// The emulator's Verbose and Logger replace those of the Cpu.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Logger = emu.Logger

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until it halts, fails, or ctx is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
