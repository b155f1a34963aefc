package cpu

import (
	"slices"
)

// State is an immutable snapshot of the resumable part of a Machine:
// memory, instruction pointer and relative base. The input queue is not
// part of the snapshot; it is supplied fresh when a machine is built from
// the state.
type State struct {
	memory       []int64
	ip           int64
	relativeBase int64
}

// NewState returns the initial state of a program: IP and relative base
// both zero.
func NewState(program []int64) State {
	return State{memory: slices.Clone(program)}
}

// Memory returns a copy of the captured memory.
func (st State) Memory() []int64 {
	return slices.Clone(st.memory)
}

// Ip returns the captured instruction pointer.
func (st State) Ip() int64 {
	return st.ip
}

// RelativeBase returns the captured relative base.
func (st State) RelativeBase() int64 {
	return st.relativeBase
}
