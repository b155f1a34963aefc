package cpu

import (
	"slices"
)

// MEMORY_LIMIT is the number of addressable cells, 128MiB of int64 words.
const MEMORY_LIMIT = int64(1) << 24

// Memory is the machine's flat, growable integer store.
//
// Cells past the end of Data read as zero. Writing past the end extends
// Data with zeros up to and including the written address. Writes at or
// past MEMORY_LIMIT are not backed, and panic with ErrAddressRange.
type Memory struct {
	Data []int64
}

// Len returns the number of cells currently backed by Data.
func (mem *Memory) Len() int64 {
	return int64(len(mem.Data))
}

// Read returns the value at addr. Panics with ErrAddressNegative if addr < 0.
func (mem *Memory) Read(addr int64) int64 {
	if addr < 0 {
		panic(ErrAddressNegative)
	}

	if addr >= mem.Len() {
		return 0
	}

	return mem.Data[addr]
}

// Write stores value at addr. Panics with ErrAddressNegative if addr < 0,
// or ErrAddressRange if addr >= MEMORY_LIMIT.
func (mem *Memory) Write(addr int64, value int64) {
	if addr < 0 {
		panic(ErrAddressNegative)
	}
	if addr >= MEMORY_LIMIT {
		panic(ErrAddressRange)
	}

	if addr >= mem.Len() {
		mem.Data = append(mem.Data, make([]int64, addr-mem.Len()+1)...)
	}

	mem.Data[addr] = value
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() Memory {
	return Memory{Data: slices.Clone(mem.Data)}
}
