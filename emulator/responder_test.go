package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
)

// Doubles each input until it reads a zero.
var doubler = []int64{3, 20, 1006, 20, 14, 1002, 20, 2, 21, 4, 21, 1105, 1, 0, 99}

func TestInteract(t *testing.T) {
	assert := assert.New(t)

	var seen [][]int64
	respond := ResponderFunc(func(outputs []int64) ([]int64, error) {
		seen = append(seen, outputs)
		if len(outputs) == 0 {
			return []int64{5}, nil
		}
		if outputs[0] > 50 {
			return []int64{0}, nil
		}
		return []int64{outputs[0] + 1}, nil
	})

	outputs, err := Interact(cpu.NewMachine(doubler), respond)
	assert.NoError(err)
	assert.Equal([]int64{10, 22, 46, 94}, outputs)
	assert.Equal([][]int64{nil, {10}, {22}, {46}, {94}}, seen)
}

func TestInteractFeed(t *testing.T) {
	assert := assert.New(t)

	feed := &Feed{{1}, {2, 3}, {0}}
	outputs, err := Interact(cpu.NewMachine(doubler), feed)
	assert.NoError(err)
	assert.Equal([]int64{2, 4, 6}, outputs)
	assert.Empty(*feed)
}

func TestInteractExhausted(t *testing.T) {
	assert := assert.New(t)

	outputs, err := Interact(cpu.NewMachine(doubler, 4), &Feed{})
	assert.ErrorIs(err, ErrInputExhausted)
	assert.Equal([]int64{8}, outputs)
}

func TestInteractErrors(t *testing.T) {
	assert := assert.New(t)

	failed := errors.New("responder failed")
	_, err := Interact(cpu.NewMachine(doubler), ResponderFunc(func([]int64) ([]int64, error) {
		return nil, failed
	}))
	assert.ErrorIs(err, failed)

	_, err = Interact(cpu.NewMachine([]int64{3, 0, 98}, 1), &Feed{})
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)
	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(int64(2), rt.Ip)
}

func TestInteractSnapshot(t *testing.T) {
	assert := assert.New(t)

	m := cpu.NewMachine(doubler, 3)
	result, err := m.Run()
	assert.NoError(err)
	assert.Equal([]int64{6}, result.Outputs)

	// Resuming a fork gives the same outputs as resuming the original.
	fork := cpu.NewMachineFromState(m.State())
	forked, err := Interact(fork, &Feed{{7}, {0}})
	assert.NoError(err)

	direct, err := Interact(m, &Feed{{7}, {0}})
	assert.NoError(err)

	assert.Equal([]int64{14}, direct)
	assert.Equal(direct, forked)
	assert.Equal(m.Memory.Data, fork.Memory.Data)
}
