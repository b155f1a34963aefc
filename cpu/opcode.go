package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the operation selected by the two low decimal digits of an
// instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JNZ  = Opcode(5)  // jnz
	OP_JZ   = Opcode(6)  // jz
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// opcodeParams is the instruction set table: parameter count per opcode.
var opcodeParams = map[Opcode]int{
	OP_ADD:  3,
	OP_MUL:  3,
	OP_IN:   1,
	OP_OUT:  1,
	OP_JNZ:  2,
	OP_JZ:   2,
	OP_LT:   3,
	OP_EQ:   3,
	OP_ARB:  1,
	OP_HALT: 0,
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() (ok bool) {
	_, ok = opcodeParams[op]
	return
}

// Params returns the number of parameter words following the opcode word.
func (op Opcode) Params() int {
	return opcodeParams[op]
}

// Stride is the natural IP advance of the instruction.
func (op Opcode) Stride() int {
	return op.Params() + 1
}

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// Instruction is the decoded view of the word at Ip.
type Instruction struct {
	Opcode Opcode
	Modes  []Mode // One per parameter, in parameter order.
	Ip     int64  // Address of the opcode word.
}

// DecodeWord splits an instruction word into its opcode and the addressing
// modes of its parameters. Absent or unknown mode digits decode as
// MODE_POSITION.
func DecodeWord(word int64) (op Opcode, modes []Mode, err error) {
	op = Opcode(word % 100)
	if !op.Valid() {
		err = ErrOpcode(op)
		return
	}

	modes = make([]Mode, op.Params())
	digits := word / 100
	for n := range modes {
		mode := Mode(digits % 10)
		switch mode {
		case MODE_IMMEDIATE, MODE_RELATIVE:
			modes[n] = mode
		default:
			modes[n] = MODE_POSITION
		}
		digits /= 10
	}

	return
}

// EncodeWord is the inverse of DecodeWord.
func EncodeWord(op Opcode, modes ...Mode) (word int64) {
	scale := int64(100)
	for _, mode := range modes {
		word += int64(mode) * scale
		scale *= 10
	}
	word += int64(op)
	return
}

// String returns the mnemonic and parameter modes of the instruction.
func (ins Instruction) String() string {
	if len(ins.Modes) == 0 {
		return ins.Opcode.String()
	}

	modes := make([]string, len(ins.Modes))
	for n, mode := range ins.Modes {
		modes[n] = mode.String()[:3]
	}
	return fmt.Sprintf("%v.%v", ins.Opcode, strings.Join(modes, "."))
}

// Disassemble renders the instruction with its parameter words read from mem.
//
// Parameters are shown as: position `[addr]`, immediate `value`, and
// relative `[rb+offset]`.
func (ins Instruction) Disassemble(mem *Memory) string {
	words := []string{ins.Opcode.String()}
	for n, mode := range ins.Modes {
		param := mem.Read(ins.Ip + 1 + int64(n))
		switch mode {
		case MODE_IMMEDIATE:
			words = append(words, fmt.Sprintf("%d", param))
		case MODE_RELATIVE:
			words = append(words, fmt.Sprintf("[rb%+d]", param))
		default:
			words = append(words, fmt.Sprintf("[%d]", param))
		}
	}
	return strings.Join(words, " ")
}
