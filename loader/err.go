package loader

import (
	"errors"

	"github.com/ezrec/tinycpu/translate"
)

var f = translate.From

var (
	ErrNoMagic   = errors.New(f("stream ended before program magic"))
	ErrShortSize = errors.New(f("stream ended inside program size"))
	ErrShortBody = errors.New(f("stream ended inside program body"))
)
