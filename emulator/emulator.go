// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives IntCode machines against their collaborators:
// I/O channels, scripted responders, and networks of machines.
package emulator

import (
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. Machine + IO channels.
type Emulator struct {
	Verbose      bool // If set, enables verbose logging.
	*cpu.Machine      // Reference to the machine simulation.

	Input     io.Channel // Source of inputs when the machine waits.
	Output    io.Channel // Destination of every output.
	Responder Responder  // If set, answers waits instead of Input.
}

// NewEmulator creates a new emulator running a copy of program.
func NewEmulator(program []int64) (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(program),
	}

	return
}

// Tick runs the machine until it halts or waits for input, sending its
// outputs to the output channel. On a wait, the next input is taken from
// the responder, if one is set, or else a single value is taken from the
// input channel.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Machine.Ip, Err: err}
		}
	}()

	result, err := emu.Machine.Run()
	if err != nil {
		return
	}

	if emu.Output != nil {
		for _, value := range result.Outputs {
			err = emu.Output.Send(value)
			if err != nil {
				return
			}
		}
	}

	switch result.Status {
	case cpu.STATUS_HALTED:
		if emu.Verbose {
			log.Printf("emulator: halted after %d ticks", emu.Machine.Ticks)
		}
		done = true
	case cpu.STATUS_WAITING:
		err = emu.feed(result.Outputs)
	}

	return
}

// Run ticks the emulator until the machine halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// feed queues the next input(s) for a waiting machine.
func (emu *Emulator) feed(outputs []int64) (err error) {
	if emu.Responder != nil {
		var inputs []int64
		inputs, err = emu.Responder.Respond(outputs)
		if err != nil {
			return
		}
		if len(inputs) == 0 {
			err = ErrInputExhausted
			return
		}
		if emu.Verbose {
			log.Printf("emulator: responder %v", inputs)
		}
		emu.Machine.AddInputs(inputs...)
		return
	}

	if emu.Input != nil {
		for value := range emu.Input.Receive() {
			emu.Machine.AddInput(value)
			return
		}
	}

	err = ErrInputExhausted
	return
}
