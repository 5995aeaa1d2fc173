package cpu

import (
	"iter"
)

// Memory is the machine's word addressed data array.
//
// Addresses wrap modulo MEMORY_SIZE; no access can fault.
type Memory [MEMORY_SIZE]uint16

// Load reads the word at addr.
func (mem *Memory) Load(addr uint16) uint16 {
	return mem[uint8(addr)]
}

// Store writes value to the word at addr.
func (mem *Memory) Store(addr uint16, value uint16) {
	mem[uint8(addr)] = value
}

// Bytes returns an iterator over memory as a little-endian byte stream,
// starting at word addr. Each word yields its low byte, then its high byte.
// Words are read lazily, and at most one full pass of memory is made.
func (mem *Memory) Bytes(addr uint16) iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for n := range uint16(MEMORY_SIZE) {
			word := mem.Load(addr + n)
			if !yield(byte(word & 0xff)) {
				return
			}
			if !yield(byte(word >> 8)) {
				return
			}
		}
	}
}

// CString returns the NUL terminated string at word addr, without the NUL.
func (mem *Memory) CString(addr uint16) (out []byte) {
	for b := range mem.Bytes(addr) {
		if b == 0 {
			break
		}
		out = append(out, b)
	}
	return
}

// Copy fills memory from words, starting at address 0. Words beyond the
// end of memory are ignored. Returns the count of words copied.
func (mem *Memory) Copy(words []uint16) int {
	return copy(mem[:], words)
}
