// Package cpu implements the cvm register machine.
//
// The machine has four 16-bit registers (r0-r3), a program counter, a stack
// pointer and a 256-word memory array. Instructions are single 16-bit words
// split into four nibbles: opcode, r1, r2 and r3, where the low byte doubles
// as an 8-bit immediate.
//
// Code and data may share memory (LAYOUT_UNIFIED) or code may live in its own
// read-only array (LAYOUT_SPLIT). The optional operand stack grows down from
// the top of memory and shares it with data; nothing guards the two from each
// other.
package cpu
