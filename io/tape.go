package io

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tape provides sequential I/O over byte streams.
//
// In decimal mode, Receive parses integers separated by commas and/or
// white space, and Send writes each value as a decimal line. In ASCII
// mode, each input byte is a value, and output values 0 through 127 are
// written as bytes; any other value is written as a decimal line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool // Set for ASCII mode.

	reader  *bufio.Reader
	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Err returns the first error that stopped reception, if any.
// End of input is not an error.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields values from the input stream.
func (tc *Tape) Receive() iter.Seq[int64] {
	if tc.Ascii {
		return tc.receiveAscii()
	}

	return tc.receiveDecimal()
}

func (tc *Tape) receiveAscii() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil || tc.err != nil {
			return
		}
		if tc.reader == nil {
			tc.reader = bufio.NewReader(tc.Input)
		}
		for {
			b, err := tc.reader.ReadByte()
			if err != nil {
				if err != io.EOF {
					tc.err = err
				}
				return
			}
			if !yield(int64(b)) {
				return
			}
		}
	}
}

func (tc *Tape) receiveDecimal() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil || tc.err != nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(scanValues)
		}
		for tc.scanner.Scan() {
			word := tc.scanner.Text()
			value, err := strconv.ParseInt(word, 10, 64)
			if err != nil {
				tc.err = ErrTapeValue(word)
				return
			}
			if !yield(value) {
				return
			}
		}
		tc.err = tc.scanner.Err()
	}
}

// isSeparator reports whether r separates decimal values.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanValues is a bufio.SplitFunc yielding comma or space separated words.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}

	end := bytes.IndexFunc(data[start:], isSeparator)
	if end >= 0 {
		_, width := utf8.DecodeRune(data[start+end:])
		return start + end + width, data[start : start+end], nil
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data.
	return start, nil, nil
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Ascii && value >= 0 && value < 128 {
		_, err = tc.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}
