package script

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoRespond = errors.New(f("script does not define respond"))
	ErrArity     = errors.New(f("respond must take one or two parameters"))
)

// ErrResult indicates a respond() return value of an unusable type.
type ErrResult string

func (err ErrResult) Error() string {
	return f("respond returned %s", string(err))
}

// ErrValue indicates a respond() value that is not a 64-bit integer.
type ErrValue string

func (err ErrValue) Error() string {
	return f("not an input value: %s", string(err))
}
