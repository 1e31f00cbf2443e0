package cpu

import (
	"errors"

	"github.com/ezrec/tinycpu/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted = errors.New(f("halted"))

	// Instruction errors
	ErrOpcodeIo = errors.New(f("io"))
)

// ErrOpcode annotates an error with the instruction that caused it.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("opcode 0x%02x %v", uint8(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
