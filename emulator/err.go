package emulator

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrNetworkEmpty   = errors.New(f("network has no stages"))
	ErrDeadlock       = errors.New(f("network deadlock"))
	ErrNoSignal       = errors.New(f("network produced no signal"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int64
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d %v", err.Ip, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrStage indicates the network stage that failed.
type ErrStage struct {
	Stage int
	Err   error
}

func (err *ErrStage) Error() string {
	return f("stage %d %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}
