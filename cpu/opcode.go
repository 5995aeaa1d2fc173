package cpu

import (
	"fmt"
)

// CodeOp is the 4-bit operation selector of an instruction word.
type CodeOp int

const (
	OP_NOOP    = CodeOp(0)  // noop
	OP_LOADI   = CodeOp(1)  // loadi
	OP_ADD     = CodeOp(2)  // add
	OP_SHR     = CodeOp(3)  // shr
	OP_LOAD    = CodeOp(4)  // load
	OP_STORE   = CodeOp(5)  // store
	OP_SYSCALL = CodeOp(6)  // syscall
	OP_SHL     = CodeOp(7)  // shl
	OP_HALT    = CodeOp(8)  // halt
	OP_PUSH    = CodeOp(9)  // push
	OP_POP     = CodeOp(10) // pop
	OP_JUMP    = CodeOp(11) // jump
)

var _code_op_names = [...]string{
	OP_NOOP:    "noop",
	OP_LOADI:   "loadi",
	OP_ADD:     "add",
	OP_SHR:     "shr",
	OP_LOAD:    "load",
	OP_STORE:   "store",
	OP_SYSCALL: "syscall",
	OP_SHL:     "shl",
	OP_HALT:    "halt",
	OP_PUSH:    "push",
	OP_POP:     "pop",
	OP_JUMP:    "jump",
}

func (op CodeOp) String() string {
	if op >= 0 && int(op) < len(_code_op_names) {
		return _code_op_names[op]
	}
	return fmt.Sprintf("CodeOp(%d)", int(op))
}

// Stack returns true if the operation only exists with the stack enabled.
func (op CodeOp) Stack() bool {
	return op == OP_PUSH || op == OP_POP || op == OP_JUMP
}

// Code is a single instruction word.
type Code struct {
	Word uint16
}

// Instruction is a fully decoded instruction word.
//
// R2/R3 and Imm are two views of the same low byte.
type Instruction struct {
	Op  CodeOp
	R1  uint8
	R2  uint8
	R3  uint8
	Imm uint8
}

// MakeCode creates a three register instruction.
func MakeCode(op CodeOp, r1, r2, r3 uint8) Code {
	return Code{
		Word: (uint16(op&0xf) << 12) | (uint16(r1&0xf) << 8) | (uint16(r2&0xf) << 4) | uint16(r3&0xf),
	}
}

// MakeCodeImm creates a register plus immediate instruction.
func MakeCodeImm(op CodeOp, r1 uint8, imm uint8) Code {
	return MakeCode(op, r1, imm>>4, imm&0xf)
}

// Op returns the operation from the instruction word.
func (code Code) Op() CodeOp {
	return CodeOp((code.Word >> 12) & 0xf)
}

// R1 returns the destination or first operand register field.
func (code Code) R1() uint8 {
	return uint8((code.Word >> 8) & 0xf)
}

// R2 returns the second operand register field.
func (code Code) R2() uint8 {
	return uint8((code.Word >> 4) & 0xf)
}

// R3 returns the third operand register field, also used as a shift count.
func (code Code) R3() uint8 {
	return uint8(code.Word & 0xf)
}

// Imm returns the 8-bit immediate, which is (R2 << 4) | R3.
func (code Code) Imm() uint8 {
	return uint8(code.Word & 0xff)
}

// Decode splits the instruction word into all of its fields.
func (code Code) Decode() Instruction {
	return Instruction{
		Op:  code.Op(),
		R1:  code.R1(),
		R2:  code.R2(),
		R3:  code.R3(),
		Imm: code.Imm(),
	}
}

// Encode rebuilds the instruction word from the register view of the fields.
func (ins Instruction) Encode() Code {
	return MakeCode(ins.Op, ins.R1, ins.R2, ins.R3)
}

// String returns the disassembly of this instruction.
func (code Code) String() (out string) {
	ins := code.Decode()

	switch ins.Op {
	case OP_NOOP, OP_HALT:
		out = ins.Op.String()
	case OP_LOADI:
		out = fmt.Sprintf("%v r%d <- %d", ins.Op, ins.R1, ins.Imm)
	case OP_ADD:
		out = fmt.Sprintf("%v r%d <- r%d + r%d", ins.Op, ins.R1, ins.R2, ins.R3)
	case OP_SHR:
		out = fmt.Sprintf("%v r%d <- r%d >> %d", ins.Op, ins.R1, ins.R2, ins.R3)
	case OP_SHL:
		out = fmt.Sprintf("%v r%d <- r%d << %d", ins.Op, ins.R1, ins.R2, ins.R3)
	case OP_LOAD:
		out = fmt.Sprintf("%v r%d <- @0x%02x", ins.Op, ins.R1, ins.Imm)
	case OP_STORE:
		out = fmt.Sprintf("%v @0x%02x <- r%d", ins.Op, ins.Imm, ins.R1)
	case OP_SYSCALL:
		out = fmt.Sprintf("%v %d", ins.Op, ins.Imm)
	case OP_PUSH, OP_POP:
		out = fmt.Sprintf("%v r%d", ins.Op, ins.R1)
	case OP_JUMP:
		out = fmt.Sprintf("%v @%d", ins.Op, ins.Imm)
	default:
		out = fmt.Sprintf(".word 0x%04x", code.Word)
	}

	return
}
