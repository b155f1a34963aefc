package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/intcode/cpu"
)

var (
	serialA = []int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	serialB = []int64{
		3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
		101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0,
	}
	serialC = []int64{
		3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
		1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0,
	}
	feedbackA = []int64{
		3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
		27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5,
	}
	feedbackB = []int64{
		3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
		-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
		53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10,
	}
)

func TestNetwork(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		program  []int64
		phases   []int64
		feedback bool
		signal   int64
	}){
		{"serial_a", serialA, []int64{4, 3, 2, 1, 0}, false, 43210},
		{"serial_b", serialB, []int64{0, 1, 2, 3, 4}, false, 54321},
		{"serial_c", serialC, []int64{1, 0, 4, 3, 2}, false, 65210},
		{"feedback_a", feedbackA, []int64{9, 8, 7, 6, 5}, true, 139629729},
		{"feedback_b", feedbackB, []int64{9, 7, 8, 5, 6}, true, 18216},
	}

	for _, entry := range table {
		net := NewAmplifiers(entry.program, entry.phases, entry.feedback)
		assert.Len(net.Nodes, len(entry.phases), entry.name)
		assert.Len(net.Links, len(entry.phases), entry.name)

		signal, err := net.Run(0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, signal, entry.name)

		for n, node := range net.Nodes {
			assert.Equal(cpu.STATUS_HALTED, node.Status(), "%v stage %d", entry.name, n)
		}
	}
}

func TestMaxSignal(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		program  []int64
		phases   []int64
		feedback bool
		signal   int64
		order    []int64
	}){
		{"serial_a", serialA, []int64{0, 1, 2, 3, 4}, false, 43210, []int64{4, 3, 2, 1, 0}},
		{"serial_c", serialC, []int64{0, 1, 2, 3, 4}, false, 65210, []int64{1, 0, 4, 3, 2}},
		{"feedback_a", feedbackA, []int64{5, 6, 7, 8, 9}, true, 139629729, []int64{9, 8, 7, 6, 5}},
	}

	for _, entry := range table {
		signal, order, err := MaxSignal(entry.program, entry.phases, entry.feedback)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, signal, entry.name)
		assert.Equal(entry.order, order, entry.name)
	}
}

// TestNetworkSnapshot drives a feedback loop by rebuilding every stage
// from its snapshot on each turn, and checks it against the network.
func TestNetworkSnapshot(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	phases := []int64{9, 8, 7, 6, 5}

	states := make([]cpu.State, len(phases))
	started := make([]bool, len(phases))
	for n := range states {
		states[n] = cpu.NewState(feedbackA)
	}

	signal := int64(0)
	for stage := 0; ; stage = (stage + 1) % len(phases) {
		inputs := []int64{signal}
		if !started[stage] {
			inputs = []int64{phases[stage], signal}
			started[stage] = true
		}

		m := cpu.NewMachineFromState(states[stage], inputs...)
		value, ok, err := m.NextOutput()
		require.NoError(err)
		if !ok {
			assert.Equal(cpu.STATUS_HALTED, m.Status())
			break
		}
		states[stage] = m.State()
		signal = value
	}

	expected, err := NewAmplifiers(feedbackA, phases, true).Run(0)
	assert.NoError(err)
	assert.Equal(expected, signal)
}

func TestNetworkErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := (&Network{}).Run(0)
	assert.ErrorIs(err, ErrNetworkEmpty)

	_, err = NewAmplifiers([]int64{3, 0, 3, 0, 3, 0, 99}, []int64{1}, false).Run(0)
	assert.ErrorIs(err, ErrDeadlock)

	_, err = NewAmplifiers([]int64{3, 0, 99}, []int64{1}, false).Run(0)
	assert.ErrorIs(err, ErrNoSignal)

	_, err = NewAmplifiers([]int64{3, 0, 3, 0, 98}, []int64{1, 2}, false).Run(0)
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)
	var stage *ErrStage
	assert.True(errors.As(err, &stage))
	assert.Equal(0, stage.Stage)
	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(int64(4), rt.Ip)

	_, _, err = MaxSignal([]int64{3, 0, 3, 0, 98}, []int64{0, 1}, false)
	assert.ErrorIs(err, cpu.ErrOpcodeInvalid)
}
