// Package io provides integer I/O channels that feed and drain IntCode
// machines: Tape for text streams such as a terminal or file, and
// Temporary, a bounded FIFO used to link machines together.
package io

import (
	"iter"
)

// Channel defines the interface for all machine I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	// Stopping the iteration early leaves the remaining values in the
	// channel.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}
