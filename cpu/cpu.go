package cpu

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// Signal is the outcome of executing a single instruction.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	SIGNAL_CONTINUE = Signal(0) // continue
	SIGNAL_OUTPUT   = Signal(1) // output
	SIGNAL_WAIT     = Signal(2) // wait
	SIGNAL_HALT     = Signal(3) // halt
)

// Status is the reason a machine last stopped.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	STATUS_READY   = Status(0) // ready
	STATUS_WAITING = Status(1) // waiting-for-input
	STATUS_HALTED  = Status(2) // halted
)

// Result is the outcome of a bulk Run.
type Result struct {
	Outputs []int64 // Values output during this run, in order.
	Status  Status  // STATUS_HALTED or STATUS_WAITING.
}

// Machine is an IntCode interpreter instance. A Machine is owned by a
// single goroutine; independent machines share no state.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Memory       Memory // Program memory.
	Ip           int64  // Current instruction pointer.
	RelativeBase int64  // Base for relative mode parameters.
	Input        Queue  // Pending inputs.

	Ticks int // Instructions executed.

	status Status
}

// NewMachine creates a machine running a copy of program, with inputs queued.
func NewMachine(program []int64, inputs ...int64) (m *Machine) {
	return NewMachineFromState(NewState(program), inputs...)
}

// NewMachineFromState creates a machine resuming from state, with inputs queued.
func NewMachineFromState(state State, inputs ...int64) (m *Machine) {
	m = &Machine{
		Memory:       Memory{Data: slices.Clone(state.memory)},
		Ip:           state.ip,
		RelativeBase: state.relativeBase,
	}
	m.Input.Push(inputs...)

	return
}

// State captures the resumable state of the machine.
func (m *Machine) State() State {
	return State{
		memory:       slices.Clone(m.Memory.Data),
		ip:           m.Ip,
		relativeBase: m.RelativeBase,
	}
}

// Status returns why the machine last stopped.
func (m *Machine) Status() Status {
	return m.status
}

// AddInput appends a value to the input queue.
func (m *Machine) AddInput(value int64) {
	m.AddInputs(value)
}

// AddInputs appends values to the input queue, in order.
func (m *Machine) AddInputs(values ...int64) {
	m.Input.Push(values...)
	if m.status == STATUS_WAITING && !m.Input.Empty() {
		m.status = STATUS_READY
	}
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("%8s: %d\n", "ip", m.Ip)
	text += fmt.Sprintf("%8s: %d\n", "rb", m.RelativeBase)
	text += fmt.Sprintf("%8s: %v\n", "status", m.status)
	text += fmt.Sprintf("%8s: %v\n", "input", m.Input.Data)
	text += fmt.Sprintf("%8s: %d\n", "memory", m.Memory.Len())
	text += fmt.Sprintf("%8s: %d\n", "ticks", m.Ticks)
	return
}

// Decode decodes the instruction at the instruction pointer.
func (m *Machine) Decode() (ins Instruction, err error) {
	if m.Ip < 0 {
		err = ErrIpInvalid
		return
	}

	word := m.Memory.Read(m.Ip)
	op, modes, err := DecodeWord(word)
	if err != nil {
		err = errors.Join(ErrInstruction{Ip: m.Ip, Word: word}, err)
		return
	}

	ins = Instruction{
		Opcode: op,
		Modes:  modes,
		Ip:     m.Ip,
	}

	return
}

// Tick decodes and executes a single instruction.
func (m *Machine) Tick() (sig Signal, output int64, err error) {
	ins, err := m.Decode()
	if err != nil {
		return
	}

	return m.Execute(ins)
}

// Execute executes a single decoded instruction.
//
// SIGNAL_OUTPUT carries the output value. SIGNAL_WAIT leaves the IP on the
// input instruction. SIGNAL_HALT leaves the IP on the halt instruction.
func (m *Machine) Execute(ins Instruction) (sig Signal, output int64, err error) {
	if !ins.Opcode.Valid() {
		err = errors.Join(ErrInstruction{Ip: ins.Ip, Word: m.Memory.Read(ins.Ip)}, ErrOpcode(ins.Opcode))
		return
	}

	if m.Verbose {
		log.Printf("%04d: %v", ins.Ip, ins.Disassemble(&m.Memory))
	}

	next_ip := ins.Ip + int64(ins.Opcode.Stride())

	switch ins.Opcode {
	case OP_ADD:
		a := m.value(ins, 0)
		b := m.value(ins, 1)
		m.Memory.Write(m.address(ins, 2), a+b)
	case OP_MUL:
		a := m.value(ins, 0)
		b := m.value(ins, 1)
		m.Memory.Write(m.address(ins, 2), a*b)
	case OP_IN:
		value, ok := m.Input.Pop()
		if !ok {
			// Don't advance to next IP.
			m.status = STATUS_WAITING
			sig = SIGNAL_WAIT
			return
		}
		m.Memory.Write(m.address(ins, 0), value)
	case OP_OUT:
		output = m.value(ins, 0)
		sig = SIGNAL_OUTPUT
	case OP_JNZ:
		if m.value(ins, 0) != 0 {
			next_ip = m.value(ins, 1)
		}
	case OP_JZ:
		if m.value(ins, 0) == 0 {
			next_ip = m.value(ins, 1)
		}
	case OP_LT:
		var flag int64
		if m.value(ins, 0) < m.value(ins, 1) {
			flag = 1
		}
		m.Memory.Write(m.address(ins, 2), flag)
	case OP_EQ:
		var flag int64
		if m.value(ins, 0) == m.value(ins, 1) {
			flag = 1
		}
		m.Memory.Write(m.address(ins, 2), flag)
	case OP_ARB:
		m.RelativeBase += m.value(ins, 0)
	case OP_HALT:
		m.status = STATUS_HALTED
		sig = SIGNAL_HALT
		return
	}

	m.Ip = next_ip
	m.Ticks++
	m.status = STATUS_READY

	return
}

// mode returns the addressing mode of parameter n.
func (ins Instruction) mode(n int) Mode {
	if n < len(ins.Modes) {
		return ins.Modes[n]
	}
	return MODE_POSITION
}

// value reads parameter n of ins, interpreted by its addressing mode.
func (m *Machine) value(ins Instruction, n int) int64 {
	param := m.Memory.Read(ins.Ip + 1 + int64(n))

	switch ins.mode(n) {
	case MODE_IMMEDIATE:
		return param
	case MODE_RELATIVE:
		return m.Memory.Read(m.RelativeBase + param)
	default:
		return m.Memory.Read(param)
	}
}

// address returns the target address of parameter n of ins. Immediate mode
// targets are treated as position mode.
func (m *Machine) address(ins Instruction, n int) int64 {
	param := m.Memory.Read(ins.Ip + 1 + int64(n))

	if ins.mode(n) == MODE_RELATIVE {
		return m.RelativeBase + param
	}
	return param
}

// Run executes instructions until the machine halts or waits for input,
// returning the values output during this call.
func (m *Machine) Run() (result Result, err error) {
	for {
		var sig Signal
		var output int64
		sig, output, err = m.Tick()
		if err != nil {
			return
		}

		switch sig {
		case SIGNAL_OUTPUT:
			result.Outputs = append(result.Outputs, output)
		case SIGNAL_WAIT:
			result.Status = STATUS_WAITING
			return
		case SIGNAL_HALT:
			result.Status = STATUS_HALTED
			return
		}
	}
}

// NextOutput executes instructions until the next output, which is
// returned with ok set. If the machine halts or waits for input first, ok
// is false; use Status to tell the two apart.
func (m *Machine) NextOutput() (value int64, ok bool, err error) {
	for {
		var sig Signal
		sig, value, err = m.Tick()
		if err != nil {
			return
		}

		switch sig {
		case SIGNAL_OUTPUT:
			ok = true
			return
		case SIGNAL_WAIT, SIGNAL_HALT:
			value = 0
			return
		}
	}
}
