package emulator

import (
	"errors"

	"github.com/ezrec/tinycpu/translate"
)

var f = translate.From

var (
	ErrImageSize = errors.New(f("image larger than memory"))
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
