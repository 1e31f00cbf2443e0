package io

import (
	"errors"

	"github.com/ezrec/tinycpu/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))

	// Display errors
	ErrDisplayMissing  = errors.New(f("display missing"))
	ErrDisplayGeometry = errors.New(f("display geometry invalid"))
)
