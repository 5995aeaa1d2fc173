package emulator

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cvm/cpu"
)

// globals returns the machine state as starlark values.
func (emu *Emulator) globals() starlark.StringDict {
	mem := make([]starlark.Value, cpu.MEMORY_SIZE)
	for n, word := range emu.Cpu.Memory {
		mem[n] = starlark.MakeInt(int(word))
	}

	pred := starlark.StringDict{
		"pc":      starlark.MakeInt(int(emu.Cpu.Pc)),
		"sp":      starlark.MakeInt(int(emu.Cpu.Sp)),
		"ticks":   starlark.MakeInt(emu.Cpu.Ticks),
		"halted":  starlark.Bool(emu.Cpu.Halted()),
		"mem":     starlark.NewList(mem),
		"output":  starlark.String(emu.Capture.String()),
		"cstring": starlark.NewBuiltin("cstring", emu.cstring),
	}
	for n, reg := range emu.Cpu.Register {
		pred[fmt.Sprintf("r%d", n)] = starlark.MakeInt(int(reg))
	}

	return pred
}

// cstring returns the NUL terminated string at a memory address.
func (emu *Emulator) cstring(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
	var addr int
	err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr)
	if err != nil {
		return
	}

	value = starlark.String(emu.Cpu.Memory.CString(uint16(addr)))
	return
}

// Eval evaluates a starlark expression against the machine state.
// The names r0-r3, pc, sp, ticks, halted, mem and output are predeclared,
// as is cstring(addr).
func (emu *Emulator) Eval(expr string) (value starlark.Value, err error) {
	thread := starlark.Thread{Name: "expect"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expect", prog, emu.globals())
	if err != nil {
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}

// Expect returns ErrExpect unless expr evaluates to True.
func (emu *Emulator) Expect(expr string) (err error) {
	value, err := emu.Eval(expr)
	if err != nil {
		return
	}

	truth, ok := value.(starlark.Bool)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	if !bool(truth) {
		err = ErrExpect(expr)
		return
	}

	return
}
