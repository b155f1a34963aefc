package emulator

import (
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

// Network is a chain of machines. Each stage's outputs are carried to the
// next stage's inputs over a link. With Feedback set, the last stage feeds
// the first.
//
// Stages are interleaved round-robin on the calling goroutine.
type Network struct {
	Verbose  bool            // If set, enables verbose logging.
	Nodes    []*cpu.Machine  // Stages, in signal order.
	Links    []*io.Temporary // Links[n] carries the outputs of Nodes[n].
	Feedback bool            // If set, the last stage feeds the first.
}

// NewAmplifiers creates a network with one stage per phase setting, each
// running a copy of program with its phase setting as first input.
func NewAmplifiers(program []int64, phases []int64, feedback bool) (net *Network) {
	net = &Network{
		Feedback: feedback,
	}

	for _, phase := range phases {
		net.Nodes = append(net.Nodes, cpu.NewMachine(program, phase))
		link := &io.Temporary{Capacity: io.TEMP_DEFAULT_CAPACITY}
		link.Rewind()
		net.Links = append(net.Links, link)
	}

	return
}

// incoming returns the link feeding stage n, if any.
func (net *Network) incoming(n int) *io.Temporary {
	switch {
	case n > 0:
		return net.Links[n-1]
	case net.Feedback:
		return net.Links[len(net.Links)-1]
	}
	return nil
}

// Run sends signal to the first stage, and runs the network until the
// last stage halts. Returns the last value output by the last stage.
func (net *Network) Run(signal int64) (last int64, err error) {
	if len(net.Nodes) == 0 {
		err = ErrNetworkEmpty
		return
	}

	net.Nodes[0].AddInput(signal)

	final := len(net.Nodes) - 1
	seen := false

	for pass := 0; ; pass++ {
		moved := false

		for n, node := range net.Nodes {
			if link := net.incoming(n); link != nil {
				for value := range link.Receive() {
					node.AddInput(value)
					moved = true
				}
			}

			var result cpu.Result
			result, err = node.Run()
			if err != nil {
				err = &ErrStage{Stage: n, Err: &ErrRuntime{Ip: node.Ip, Err: err}}
				return
			}

			for _, value := range result.Outputs {
				err = net.Links[n].Send(value)
				if err != nil {
					err = &ErrStage{Stage: n, Err: err}
					return
				}
				moved = true
			}

			if n == final && len(result.Outputs) > 0 {
				last = result.Outputs[len(result.Outputs)-1]
				seen = true
				if !net.Feedback {
					// Nothing reads the final link.
					for range net.Links[n].Receive() {
					}
				}
			}

			if net.Verbose {
				log.Printf("network: pass %d stage %d %v %v", pass, n, result.Status, result.Outputs)
			}
		}

		if net.Nodes[final].Status() == cpu.STATUS_HALTED {
			break
		}

		if !moved {
			err = ErrDeadlock
			return
		}
	}

	if !seen {
		err = ErrNoSignal
	}

	return
}

// MaxSignal tries every ordering of the phase settings on an amplifier
// network running program, fed an initial signal of 0. Returns the highest
// signal and the phase order that produced it.
func MaxSignal(program []int64, phases []int64, feedback bool) (best int64, order []int64, err error) {
	for perm := range internal.Permutations(phases) {
		var signal int64
		signal, err = NewAmplifiers(program, perm, feedback).Run(0)
		if err != nil {
			return
		}
		if order == nil || signal > best {
			best = signal
			order = perm
		}
	}

	return
}
