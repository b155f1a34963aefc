package io

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		input    string
		expected []int64
	}){
		{"empty", "", nil},
		{"comma", "1,9,10,3,2,3,11,0,99,30,40,50\n", []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"lines", "3\n-4\n  5 \n", []int64{3, -4, 5}},
		{"mixed", "1, 2,,3\t4\r\n+5", []int64{1, 2, 3, 4, 5}},
		{"large", "1125899906842624", []int64{1125899906842624}},
		{"unicode_space", "7\u00a08", []int64{7, 8}},
	}

	for _, entry := range table {
		tape := &Tape{Input: strings.NewReader(entry.input)}
		values := slices.Collect(tape.Receive())
		assert.Equal(entry.expected, values, entry.name)
		assert.NoError(tape.Err(), entry.name)
	}
}

func TestTape_Receive_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1,2,3")}

	for value := range tape.Receive() {
		assert.Equal(int64(1), value)
		break
	}

	assert.Equal([]int64{2, 3}, slices.Collect(tape.Receive()))
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTape_Receive_Invalid(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1,x2,3")}
	assert.Equal([]int64{1}, slices.Collect(tape.Receive()))
	assert.Equal(ErrTapeValue("x2"), tape.Err())

	// Reception stays stopped.
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.Empty(slices.Collect(tape.Receive()))

	tape.Ascii = true
	assert.Empty(slices.Collect(tape.Receive()))
}

func TestTape_Receive_Ascii(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("A,1\n"), Ascii: true}
	assert.Equal([]int64{65, 44, 49, 10}, slices.Collect(tape.Receive()))
	assert.NoError(tape.Err())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(1))
	assert.NoError(tape.Send(-20))
	assert.NoError(tape.Send(1219070632396864))
	assert.Equal("1\n-20\n1219070632396864\n", output.String())
}

func TestTape_Send_Ascii(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output, Ascii: true}

	for _, value := range []int64{'#', '.', '\n', 12345, -1, 'A'} {
		assert.NoError(tape.Send(value))
	}
	assert.Equal("#.\n12345\n-1\nA", output.String())
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("4 5")}
	tape.Rewind()
	assert.Equal([]int64{4, 5}, slices.Collect(tape.Receive()))
}
