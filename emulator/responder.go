package emulator

import (
	"github.com/ezrec/intcode/cpu"
)

// Responder answers a machine waiting for input. It is given the values
// output since the machine last waited, and returns the inputs to queue.
type Responder interface {
	Respond(outputs []int64) (inputs []int64, err error)
}

// ResponderFunc adapts a function to a Responder.
type ResponderFunc func(outputs []int64) (inputs []int64, err error)

func (rf ResponderFunc) Respond(outputs []int64) ([]int64, error) {
	return rf(outputs)
}

// Feed is a Responder that answers each wait with its next batch of
// inputs, ignoring the outputs.
type Feed [][]int64

func (feed *Feed) Respond(outputs []int64) (inputs []int64, err error) {
	if len(*feed) == 0 {
		return
	}

	inputs = (*feed)[0]
	*feed = (*feed)[1:]
	return
}

// Interact runs m to completion. Every time m waits for input, the
// outputs of that run are handed to r and its answer is queued. Returns
// every value output by m.
func Interact(m *cpu.Machine, r Responder) (outputs []int64, err error) {
	for {
		var result cpu.Result
		result, err = m.Run()
		outputs = append(outputs, result.Outputs...)
		if err != nil {
			err = &ErrRuntime{Ip: m.Ip, Err: err}
			return
		}
		if result.Status == cpu.STATUS_HALTED {
			return
		}

		var inputs []int64
		inputs, err = r.Respond(result.Outputs)
		if err != nil {
			return
		}
		if len(inputs) == 0 {
			err = ErrInputExhausted
			return
		}
		m.AddInputs(inputs...)
	}
}
