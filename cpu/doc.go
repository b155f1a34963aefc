// Package cpu implements the IntCode machine.
//
// The machine consists of a self-modifying, zero-extended integer memory,
// an instruction pointer (IP), a relative base register used by relative
// addressing, and a FIFO input queue. Instructions are decoded from the
// word at the IP: the two low decimal digits select the opcode, and each
// higher digit selects the addressing mode of one parameter.
//
// Execution is cooperative. An input instruction with an empty queue
// leaves the IP on itself and suspends the machine, which resumes from the
// same instruction once more input has been queued. The resumable part of
// the machine (memory, IP and relative base) can be captured as a State
// and used to build independent machines.
package cpu
