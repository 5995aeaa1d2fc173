package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ezrec/cvm/cpu"
	"github.com/ezrec/cvm/emulator"
)

const debugHelp = `commands:
  step [n]          execute n instructions (default 1)
  continue          run until halt
  regs              show registers
  mem <addr> [n]    show n memory words (default 8)
  list [n]          show n program words from pc (default 8)
  output            show console output so far
  eval <expr>       evaluate an expression (r0-r3, pc, sp, ticks, mem)
  reset             restart the program
  quit              leave the debugger`

// debug runs an interactive single step console on emu.
func debug(emu *emulator.Emulator) (err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "cvm> ",
	})
	if err != nil {
		return
	}
	defer rl.Close()

	fmt.Println(debugHelp)
	fmt.Printf("%02x: %v\n", emu.Cpu.Pc, emu.Code())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			// io.EOF
			return nil
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			words = []string{"step"}
		}

		switch words[0] {
		case "s", "step":
			count := 1
			if len(words) > 1 {
				count, err = strconv.Atoi(words[1])
				if err != nil {
					fmt.Println(err)
					continue
				}
			}
			debugStep(emu, count)
		case "c", "continue":
			debugStep(emu, -1)
		case "r", "regs":
			fmt.Print(emu.Cpu.String())
		case "m", "mem":
			debugMem(emu, words[1:])
		case "l", "list":
			debugList(emu, words[1:])
		case "o", "output":
			fmt.Printf("%q\n", emu.Capture.String())
		case "e", "eval":
			value, err := emu.Eval(strings.Join(words[1:], " "))
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(value)
		case "reset":
			err = emu.Reset()
			if err != nil {
				return err
			}
			fmt.Printf("%02x: %v\n", emu.Cpu.Pc, emu.Code())
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Println(debugHelp)
		}
	}
}

// debugStep ticks the emulator count times, or until halt if count < 0.
func debugStep(emu *emulator.Emulator, count int) {
	for n := 0; count < 0 || n < count; n++ {
		done, err := emu.Tick()
		if err != nil {
			fmt.Println(err)
			return
		}
		if done {
			fmt.Println(emu.Cpu.Dump())
			return
		}
	}

	fmt.Printf("%02x: %v\n", emu.Cpu.Pc, emu.Code())
}

// debugMem prints memory words.
func debugMem(emu *emulator.Emulator, args []string) {
	if len(args) == 0 {
		fmt.Println("mem <addr> [n]")
		return
	}

	addr, err := strconv.ParseUint(args[0], 0, 16)
	if err != nil {
		fmt.Println(err)
		return
	}

	count := uint64(8)
	if len(args) > 1 {
		count, err = strconv.ParseUint(args[1], 0, 16)
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	for n := range min(count, cpu.MEMORY_SIZE) {
		at := uint16(addr + n)
		word := emu.Cpu.Memory.Load(at)
		fmt.Printf("@%02x: %04x  %v\n", uint8(at), word, cpu.Code{Word: word})
	}
}

// debugList prints the loaded program words from pc onwards, as written
// before any self modification.
func debugList(emu *emulator.Emulator, args []string) {
	count := 8
	if len(args) > 0 {
		var err error
		count, err = strconv.Atoi(args[0])
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	for n := range count {
		pc := emu.Cpu.Pc + uint16(n)
		code, ok := emu.Program.Debug(pc)
		if !ok {
			break
		}
		mark := " "
		if n == 0 {
			mark = ">"
		}
		fmt.Printf("%v%02x: %04x  %v\n", mark, pc, code.Word, code)
	}
}
