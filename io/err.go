package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
)

// ErrTapeValue is a token on a decimal tape that is not an integer.
type ErrTapeValue string

func (err ErrTapeValue) Error() string {
	return f("'%v' is not an integer", string(err))
}
