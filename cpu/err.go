package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrIpInvalid       = errors.New(f("ip invalid"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrAddressNegative = errors.New(f("memory access at negative address"))
	ErrAddressRange    = errors.New(f("memory write past memory limit"))
)

// ErrOpcode reports a word whose two low digits are not a known opcode.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", int(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeInvalid {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}

// ErrInstruction locates the instruction that failed.
type ErrInstruction struct {
	Ip   int64
	Word int64
}

func (err ErrInstruction) Error() string {
	return f("ip %v word %v", err.Ip, err.Word)
}
