package emulator

import (
	"slices"

	"github.com/ezrec/cvm/cpu"
)

// Sample is a demonstration program with the machine variant it runs on
// and what it should leave behind.
type Sample struct {
	cpu.Program
	Config cpu.Config // Machine variant.
	Expect string     // Expression over the final state; see Eval.
}

// The hand assembled demonstration programs.
var Samples = []Sample{
	{
		Program: cpu.Program{Name: "sample", Words: []uint16{
			0x1064, // loadi r0 <- 100
			0x11C8, // loadi r1 <- 200
			0x2201, // add r2 <- r0 + r1
			0x5200, // store @0x00 <- r2
			0x4201, // load r2 <- @0x01
			0x4200, // load r2 <- @0x00
			0x3302, // shr r3 <- r0 >> 2
			0x0000,
			0x0000,
			0x8000,
		}},
		Config: cpu.CONFIG_STACK,
		Expect: "(r0, r1, r2, r3) == (100, 200, 300, 25) and mem[0] == 300 and mem[1] == 0x11c8",
	},
	{
		Program: cpu.Program{Name: "sample-split", Words: []uint16{
			0x1064, // loadi r0 <- 100
			0x11C8, // loadi r1 <- 200
			0x2201, // add r2 <- r0 + r1
			0x5200, // store @0x00 <- r2
			0x4201, // load r2 <- @0x01
			0x4200, // load r2 <- @0x00
			0x3302, // shr r3 <- r0 >> 2
			0x0000,
			0x0000,
			0x8000,
		}},
		Config: cpu.CONFIG_SPLIT,
		Expect: "(r0, r1, r2, r3) == (100, 200, 300, 25) and mem[0] == 300 and mem[1] == 0",
	},
	{
		Program: cpu.Program{Name: "pushpop", Words: []uint16{
			0x100A, // loadi r0 <- 10
			0x9000, // push r0
			0x1000, // loadi r0 <- 0
			0xA000, // pop r0
			0x1101, // loadi r1 <- 1
			0x9100, // push r1
			0x1102, // loadi r1 <- 2
			0x9100, // push r1
			0x1103, // loadi r1 <- 3
			0x9100, // push r1
			0xA100, // pop r1
			0xA200, // pop r2
			0xA300, // pop r3
			0x8000,
		}},
		Config: cpu.CONFIG_STACK,
		Expect: `(r0, r1, r2, r3) == (10, 3, 2, 1) and sp == 0 and output == ""`,
	},
	{
		Program: cpu.Program{Name: "hello", Words: []uint16{
			0x1004, // loadi r0 <- 4
			0x9000, // push r0
			0x6000, // syscall 0
			0x8000,
			0x6548, // "He"
			0x6C6C, // "ll"
			0x206F, // "o "
			0x6F77, // "wo"
			0x6C72, // "rl"
			0x2164, // "d!"
			0x0000,
		}},
		Config: cpu.CONFIG_STACK,
		Expect: `r0 == 4 and sp == 0 and output == "Hello world!"`,
	},
	{
		Program: cpu.Program{Name: "hello-reg", Words: []uint16{
			0x1003, // loadi r0 <- 3
			0x6000, // syscall 0
			0x8000,
			0x6548, // "He"
			0x6C6C, // "ll"
			0x206F, // "o "
			0x6F77, // "wo"
			0x6C72, // "rl"
			0x2164, // "d!"
			0x0000,
		}},
		Config: cpu.CONFIG_BASIC,
		Expect: `r0 == 3 and sp == 0 and output == "Hello world!"`,
	},
	{
		Program: cpu.Program{Name: "jumper", Words: []uint16{
			0xB003, // jump @3
			0x1001, // loadi r0 <- 1
			0xB004, // jump @4
			0xB001, // jump @1
			0x8000,
		}},
		Config: cpu.CONFIG_STACK,
		Expect: "(r0, r1, r2, r3) == (1, 0, 0, 0) and pc == 5 and ticks == 5",
	},
}

// LookupSample finds a demonstration program by name.
func LookupSample(name string) (sample Sample, ok bool) {
	index := slices.IndexFunc(Samples, func(s Sample) bool { return s.Name == name })
	if index < 0 {
		return
	}

	return Samples[index], true
}

// Emulator returns a reset emulator loaded with the sample.
func (sample *Sample) Emulator() (emu *Emulator) {
	emu = NewEmulator(sample.Config)
	emu.Program = &sample.Program
	emu.Reset()

	return
}
