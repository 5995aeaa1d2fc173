// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"

	"github.com/ezrec/cvm/cpu"
	"github.com/ezrec/cvm/io"
)

// Emulator state. A fresh CPU per run, plus the console it prints to.
type Emulator struct {
	Verbose  bool         // If set, traces every instruction.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program.
	Config   cpu.Config   // Machine variant used on Reset.
	Budget   int          // Maximum instructions per run; 0 is unlimited.

	Console io.Tape      // Print syscall output.
	Capture io.Temporary // First CAPTURE_CAPACITY bytes of output; see Eval.
}

// Console output kept for Eval.
const CAPTURE_CAPACITY = 8192

// console copies syscall output to both the tape and the capture buffer.
type console struct {
	emu *Emulator
}

func (con *console) Rewind() {
	con.emu.Console.Rewind()
	con.emu.Capture.Rewind()
}

// Send writes value to the tape. A full capture buffer drops it silently.
func (con *console) Send(value byte) (err error) {
	err = con.emu.Capture.Send(value)
	if err != nil && !errors.Is(err, io.ErrChannelFull) {
		return
	}

	err = con.emu.Console.Send(value)
	return
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator(config cpu.Config) (emu *Emulator) {
	emu = &Emulator{
		Config:  config,
		Program: &cpu.Program{},
	}
	emu.Capture.Capacity = CAPTURE_CAPACITY

	emu.Reset()

	return
}

// Reset discards the CPU and builds a fresh one from the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil {
		err = ErrProgramMissing
		return
	}

	emu.Cpu = cpu.NewCpu(emu.Config, emu.Program.Words)
	emu.Cpu.Verbose = emu.Verbose

	con := &console{emu: emu}
	con.Rewind()
	emu.Cpu.SetConsole(con)

	if emu.Verbose {
		log.Printf("emulator: reset %v (%v)", emu.Program.Name, emu.Config)
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Code returns the instruction at the current program counter.
func (emu *Emulator) Code() cpu.Code {
	code, _ := emu.Cpu.Fetch()
	return code
}

// Tick performs a single tick of the emulator.
//
// Once the budget is spent ErrBudget is returned and the CPU is left
// exactly as the last executed instruction left it.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Cpu.Halted() {
		done = true
		return
	}

	if emu.Budget > 0 && emu.Cpu.Ticks >= emu.Budget {
		err = ErrBudget
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()
	if done && emu.Verbose {
		log.Print(emu.Cpu.Dump())
	}

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
