package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Program is a named, hand assembled sequence of instruction words.
type Program struct {
	Name  string
	Words []uint16
}

// Debug returns the code at address pc, if the program covers it.
func (prog *Program) Debug(pc uint16) (code Code, ok bool) {
	if int(pc) >= len(prog.Words) {
		return
	}

	return Code{Word: prog.Words[pc]}, true
}

// Codes returns an iterator over the program's address and code pairs.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(pc uint16, code Code) bool) {
		for n, word := range prog.Words {
			if !yield(uint16(n), Code{Word: word}) {
				return
			}
		}
	}
}

// Listing returns the disassembly of the program, one word per line.
// Data words are disassembled like any other; the machine cannot tell them
// apart.
func (prog *Program) Listing() string {
	var text strings.Builder

	for pc, code := range prog.Codes() {
		fmt.Fprintf(&text, "%02x: %04x  %v\n", pc, code.Word, code)
	}

	return text.String()
}
