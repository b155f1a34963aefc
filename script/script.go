// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script answers waiting IntCode machines from Starlark source.
//
// The source must define a respond function, taking the values output
// since the last wait and, optionally, a mutable state dictionary that
// persists across calls:
//
//	def respond(outputs, state):
//	    state["turn"] = state.get("turn", 0) + 1
//	    return ascii("NOT A")
//
// respond returns the inputs to queue, as a list of integers, a single
// integer, a string (queued byte by byte), or None when it has nothing
// left to say.
//
// Predeclared helpers:
//
//	ascii(text)     list of the bytes of text, followed by a newline
//	text(outputs)   string of the ASCII outputs; others are rendered in decimal
package script

import (
	"fmt"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Responder is a Starlark scripted responder.
type Responder struct {
	Verbose bool // If set, logs every call.

	thread  *starlark.Thread
	respond *starlark.Function
	state   *starlark.Dict
	calls   int
}

// predeclared are the helpers visible to every script.
var predeclared = starlark.StringDict{
	"ascii": starlark.NewBuiltin("ascii", builtinAscii),
	"text":  starlark.NewBuiltin("text", builtinText),
}

// NewResponder compiles the script src, read from filename when src is nil.
func NewResponder(filename string, src any) (r *Responder, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%s: %s", filename, msg)
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	fn, ok := globals["respond"].(*starlark.Function)
	if !ok {
		err = ErrNoRespond
		return
	}

	switch fn.NumParams() {
	case 1, 2:
	default:
		err = ErrArity
		return
	}

	r = &Responder{
		thread:  thread,
		respond: fn,
		state:   starlark.NewDict(0),
	}

	return
}

// Calls returns the number of times respond() has been called.
func (r *Responder) Calls() int {
	return r.calls
}

// Respond calls the script's respond function.
func (r *Responder) Respond(outputs []int64) (inputs []int64, err error) {
	r.calls++

	args := starlark.Tuple{toList(outputs)}
	if r.respond.NumParams() == 2 {
		args = append(args, r.state)
	}

	value, err := starlark.Call(r.thread, r.respond, args, nil)
	if err != nil {
		return
	}

	inputs, err = fromValue(value)
	if err != nil {
		return
	}

	if r.Verbose {
		log.Printf("script: call %d %v => %v", r.calls, outputs, inputs)
	}

	return
}

// toList converts machine outputs to a Starlark list.
func toList(values []int64) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeInt64(value)
	}
	return starlark.NewList(elems)
}

// toInt64 converts a Starlark integer to a machine value.
func toInt64(value starlark.Value) (result int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrValue(value.Type())
		return
	}

	result, ok = st_int.Int64()
	if !ok {
		err = ErrValue(st_int.String())
		return
	}

	return
}

// fromValue converts a respond() result to machine inputs.
func fromValue(value starlark.Value) (inputs []int64, err error) {
	switch value := value.(type) {
	case starlark.NoneType:
		return
	case starlark.Int:
		var input int64
		input, err = toInt64(value)
		if err != nil {
			return
		}
		inputs = []int64{input}
		return
	case starlark.String:
		for _, b := range []byte(string(value)) {
			inputs = append(inputs, int64(b))
		}
		return
	case *starlark.List, starlark.Tuple:
		iter := starlark.Iterate(value)
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			var input int64
			input, err = toInt64(elem)
			if err != nil {
				return
			}
			inputs = append(inputs, input)
		}
		return
	}

	err = ErrResult(value.Type())
	return
}

// builtinAscii implements ascii(text).
func builtinAscii(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text)
	if err != nil {
		return nil, err
	}

	values := make([]int64, 0, len(text)+1)
	for _, c := range []byte(text) {
		values = append(values, int64(c))
	}
	values = append(values, '\n')

	return toList(values), nil
}

// builtinText implements text(outputs).
func builtinText(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var outputs starlark.Iterable
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &outputs)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	iter := outputs.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		value, err := toInt64(elem)
		if err != nil {
			return nil, err
		}
		if value >= 0 && value < 128 {
			sb.WriteByte(byte(value))
		} else {
			fmt.Fprintf(&sb, "%d", value)
		}
	}

	return starlark.String(sb.String()), nil
}
