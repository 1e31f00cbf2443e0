package image

import (
	"errors"

	"github.com/ezrec/tinycpu/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("script does not assign program"))
	ErrTooLarge  = errors.New(f("program larger than memory"))
)

// ErrValue indicates a program element that is not a byte.
type ErrValue struct {
	Index int    // Offset in the flattened program.
	Value string // Starlark rendering of the element.
}

func (err *ErrValue) Error() string {
	return f("program[%d]: %v is not a byte", err.Index, err.Value)
}

// ErrArgument indicates a builtin was given an out of range argument.
type ErrArgument struct {
	Builtin string
	Name    string
	Value   int
}

func (err *ErrArgument) Error() string {
	return f("%v: %v %d out of range", err.Builtin, err.Name, err.Value)
}
