package cpu

import (
	"fmt"
	"iter"
)

// Program is an IntCode memory image.
type Program []int64

// Instructions walks the program from address 0, yielding each decoded
// instruction and its address. A word that does not decode is yielded as
// a single word instruction whose Opcode is not Valid().
func (prog Program) Instructions() iter.Seq2[int64, Instruction] {
	return func(yield func(ip int64, ins Instruction) bool) {
		for ip := int64(0); ip < int64(len(prog)); {
			word := prog[ip]
			op, modes, err := DecodeWord(word)
			if err != nil {
				op = Opcode(word % 100)
				modes = nil
			}
			if !yield(ip, Instruction{Opcode: op, Modes: modes, Ip: ip}) {
				return
			}
			if err != nil {
				ip++
			} else {
				ip += int64(op.Stride())
			}
		}
	}
}

// Listing yields a disassembly line for each instruction in the program.
// Words that do not decode are shown as data.
func (prog Program) Listing() iter.Seq2[int64, string] {
	mem := &Memory{Data: prog}
	return func(yield func(ip int64, line string) bool) {
		for ip, ins := range prog.Instructions() {
			var line string
			if ins.Opcode.Valid() {
				line = ins.Disassemble(mem)
			} else {
				line = fmt.Sprintf("data %d", prog[ip])
			}
			if !yield(ip, line) {
				return
			}
		}
	}
}
