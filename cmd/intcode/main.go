// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/script"
)

// patch is a memory patch applied before execution.
type patch struct {
	addr  int64
	value int64
}

// parsePatch parses an addr=value memory patch.
func parsePatch(text string) (p patch, err error) {
	addr, value, ok := strings.Cut(text, "=")
	if !ok {
		err = fmt.Errorf("%q: expected addr=value", text)
		return
	}

	p.addr, err = strconv.ParseInt(strings.TrimSpace(addr), 0, 64)
	if err != nil {
		return
	}
	if p.addr < 0 {
		err = fmt.Errorf("%q: %w", text, cpu.ErrAddressNegative)
		return
	}
	if p.addr >= cpu.MEMORY_LIMIT {
		err = fmt.Errorf("%q: %w", text, cpu.ErrAddressRange)
		return
	}

	p.value, err = strconv.ParseInt(strings.TrimSpace(value), 0, 64)
	return
}

// parsePhases parses a comma separated list of phase settings.
func parsePhases(text string) (phases []int64, err error) {
	tape := &io.Tape{Input: strings.NewReader(text)}
	for phase := range tape.Receive() {
		phases = append(phases, phase)
	}
	err = tape.Err()
	return
}

// loadProgram reads a comma separated program image.
func loadProgram(path string) (program []int64, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	tape := &io.Tape{Input: inf}
	for word := range tape.Receive() {
		program = append(program, word)
	}
	err = tape.Err()
	return
}

func main() {
	var programFile string
	var input string
	var output string
	var ascii bool
	var scriptFile string
	var phaseList string
	var feedback bool
	var disassemble bool
	var verbose bool
	var patches []patch

	flag.StringVar(&programFile, "p", "", "IntCode program file")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&ascii, "a", false, "ASCII tape mode")
	flag.StringVar(&scriptFile, "s", "", "Starlark responder script")
	flag.Func("x", "Patch memory before running, as addr=value (repeatable)", func(text string) error {
		p, err := parsePatch(text)
		if err == nil {
			patches = append(patches, p)
		}
		return err
	})
	flag.StringVar(&phaseList, "phases", "", "Run an amplifier network over all orderings of these phase settings")
	flag.BoolVar(&feedback, "feedback", false, "Amplifier network feedback loop")
	flag.BoolVar(&disassemble, "d", false, "Disassemble the program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(programFile) == 0 {
		log.Fatalf("%v: -p program file required", os.Args[0])
	}

	program, err := loadProgram(programFile)
	if err != nil {
		log.Fatalf("%v: %v", programFile, err)
	}

	for _, p := range patches {
		mem := cpu.Memory{Data: program}
		mem.Write(p.addr, p.value)
		program = mem.Data
	}

	tape := &io.Tape{Ascii: ascii}

	if output == "-" {
		tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		tape.Output = ouf
	}

	if disassemble {
		for ip, line := range cpu.Program(program).Listing() {
			fmt.Fprintf(tape.Output, "%6d: %v\n", ip, line)
		}
		return
	}

	if len(phaseList) != 0 {
		phases, err := parsePhases(phaseList)
		if err != nil {
			log.Fatalf("-phases: %v", err)
		}

		signal, order, err := emulator.MaxSignal(program, phases, feedback)
		if err != nil {
			log.Fatal(err)
		}
		if verbose {
			log.Printf("phases: %v", order)
		}

		err = tape.Send(signal)
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	emu := emulator.NewEmulator(program)
	emu.Verbose = verbose
	emu.Output = tape

	if len(scriptFile) != 0 {
		responder, err := script.NewResponder(scriptFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", scriptFile, err)
		}
		responder.Verbose = verbose
		emu.Responder = responder
	} else {
		if input == "-" {
			tape.Input = os.Stdin
		} else {
			inf, err := os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
			tape.Input = inf
		}
		emu.Input = tape
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}

	if tape.Err() != nil {
		log.Fatalf("%v: %v", input, tape.Err())
	}
}
