package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// runProgram runs words to halt, failing the test after limit ticks.
func runProgram(t *testing.T, config Config, words []uint16, limit int) (cpu *Cpu) {
	cpu = NewCpu(config, words)
	for cpu.Running {
		if cpu.Ticks >= limit {
			t.Fatalf("no halt after %d ticks\n%v", limit, cpu.String())
		}
		err := cpu.Tick()
		if err != nil {
			t.Fatalf("%v\n%v", err, cpu.String())
		}
	}
	return
}

func TestNewCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(CONFIG_STACK, []uint16{0x1064, 0x8000})
	assert.True(cpu.Running)
	assert.False(cpu.Halted())
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(uint16(0), cpu.Sp)
	assert.Equal([REGISTER_COUNT]uint16{}, cpu.Register)
	assert.Equal(uint16(0x1064), cpu.Memory[0])
	assert.Equal(uint16(0x8000), cpu.Memory[1])
	assert.Equal(uint16(0), cpu.Memory[2])

	split := NewCpu(CONFIG_SPLIT, []uint16{0x1064, 0x8000})
	assert.Equal(Memory{}, split.Memory)
	code, err := split.Fetch()
	assert.NoError(err)
	assert.Equal(uint16(0x1064), code.Word)
}

func TestHaltFirst(t *testing.T) {
	assert := assert.New(t)

	for _, config := range []Config{CONFIG_BASIC, CONFIG_SPLIT, CONFIG_STACK} {
		cpu := NewCpu(config, []uint16{0x8000, 0x1001})
		err := cpu.Run()
		assert.NoError(err, config.String())
		assert.True(cpu.Halted(), config.String())
		assert.Equal(1, cpu.Ticks, config.String())
		assert.Equal(uint16(1), cpu.Pc, config.String())
		assert.Equal([REGISTER_COUNT]uint16{}, cpu.Register, config.String())

		err = cpu.Tick()
		assert.ErrorIs(err, ErrHalted, config.String())
		assert.Equal(1, cpu.Ticks, config.String())
	}
}

func TestOpcodes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		config   Config
		program  []uint16
		register [REGISTER_COUNT]uint16
	}){
		{"loadi", CONFIG_BASIC, []uint16{0x1064, 0x11C8, 0x12FF, 0x8000}, [4]uint16{100, 200, 255, 0}},
		{"loadi_add", CONFIG_BASIC, []uint16{0x1105, 0x2210, 0x8000}, [4]uint16{0, 5, 5, 0}},
		{"loadi_shr", CONFIG_BASIC, []uint16{0x1140, 0x3210, 0x8000}, [4]uint16{0, 0x40, 0x40, 0}},
		{"loadi_shl", CONFIG_BASIC, []uint16{0x1140, 0x7210, 0x8000}, [4]uint16{0, 0x40, 0x40, 0}},
		{"add_self", CONFIG_BASIC, []uint16{0x1007, 0x2000, 0x8000}, [4]uint16{14, 0, 0, 0}},
		{"shr", CONFIG_BASIC, []uint16{0x1064, 0x3302, 0x8000}, [4]uint16{100, 0, 0, 25}},
		{"shl", CONFIG_BASIC, []uint16{0x1064, 0x7302, 0x8000}, [4]uint16{100, 0, 0, 400}},
		{"shl_15", CONFIG_BASIC, []uint16{0x1001, 0x710F, 0x8000}, [4]uint16{1, 0x8000, 0, 0}},
		{"add_wrap", CONFIG_BASIC, []uint16{
			0x10FF, // loadi r0 <- 255
			0x7008, // shl r0 <- r0 << 8
			0x11FF, // loadi r1 <- 255
			0x2001, // add r0 <- r0 + r1
			0x1101, // loadi r1 <- 1
			0x2201, // add r2 <- r0 + r1
			0x8000,
		}, [4]uint16{0xFFFF, 1, 0, 0}},
		{"register_wrap", CONFIG_BASIC, []uint16{0x1507, 0x8000}, [4]uint16{0, 7, 0, 0}},
		{"undefined", CONFIG_STACK, []uint16{0xC123, 0xD456, 0xE789, 0xFABC, 0x1001, 0x8000}, [4]uint16{1, 0, 0, 0}},
		{"no_stack", CONFIG_BASIC, []uint16{0x1001, 0x9000, 0xA100, 0xB005, 0x1202, 0x8000}, [4]uint16{1, 0, 2, 0}},
	}

	for _, entry := range table {
		cpu := runProgram(t, entry.config, entry.program, 100)
		assert.Equal(entry.register, cpu.Register, entry.name)
		assert.Equal(uint16(len(entry.program)), cpu.Pc, entry.name)
		assert.Equal(len(entry.program), cpu.Ticks, entry.name)
	}
}

func TestStoreLoad(t *testing.T) {
	assert := assert.New(t)

	for _, config := range []Config{CONFIG_BASIC, CONFIG_SPLIT, CONFIG_STACK} {
		cpu := runProgram(t, config, []uint16{
			0x1064, // loadi r0 <- 100
			0x11C8, // loadi r1 <- 200
			0x2201, // add r2 <- r0 + r1
			0x5280, // store @0x80 <- r2
			0x4380, // load r3 <- @0x80
			0x8000,
		}, 100)
		assert.Equal(uint16(300), cpu.Register[3], config.String())
		assert.Equal(uint16(300), cpu.Memory[0x80], config.String())
	}
}

func TestUnifiedSelfModify(t *testing.T) {
	assert := assert.New(t)

	// Overwrites the halt at 0x03 with a loadi, so execution runs on.
	cpu := runProgram(t, CONFIG_BASIC, []uint16{
		0x4004, // load r0 <- @0x04
		0x5003, // store @0x03 <- r0
		0x0000,
		0x8000,
		0x1109, // loadi r1 <- 9
		0x8000,
	}, 100)

	assert.Equal(uint16(9), cpu.Register[1])
	assert.Equal(uint16(6), cpu.Pc)
}

func TestSplitLayout(t *testing.T) {
	assert := assert.New(t)

	program := []uint16{
		0x4001, // load r0 <- @0x01
		0x5100, // store @0x00 <- r1
		0x8000,
	}

	cpu := runProgram(t, CONFIG_SPLIT, program, 100)
	assert.Equal(uint16(0), cpu.Register[0])
	assert.Equal(uint16(0x4001), program[0])

	unified := runProgram(t, CONFIG_BASIC, program, 100)
	assert.Equal(uint16(0x5100), unified.Register[0])
	assert.Equal(uint16(0), unified.Memory[0])
}

func TestSplitFetchPastEnd(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(CONFIG_SPLIT, []uint16{0x1001})
	for range 10 {
		assert.NoError(cpu.Tick())
	}
	assert.Equal(uint16(10), cpu.Pc)
	assert.Equal(uint16(1), cpu.Register[0])
	assert.True(cpu.Running)

	strict := CONFIG_SPLIT
	strict.Strict = true
	cpu = NewCpu(strict, []uint16{0x1001})
	assert.NoError(cpu.Tick())
	err := cpu.Tick()
	assert.ErrorIs(err, ErrPcRange)
	assert.Equal(uint16(1), cpu.Pc)
}

func TestJumper(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(CONFIG_STACK, []uint16{0xB003, 0x1001, 0xB004, 0xB001, 0x8000})

	var trace []uint16
	for cpu.Running {
		trace = append(trace, cpu.Pc)
		assert.NoError(cpu.Tick())
		if len(trace) > 10 {
			t.Fatalf("runaway: %v", trace)
		}
	}

	assert.Equal([]uint16{0, 3, 1, 2, 4}, trace)
	assert.Equal([REGISTER_COUNT]uint16{1, 0, 0, 0}, cpu.Register)
	assert.Equal(uint16(5), cpu.Pc)
}

func TestJumpSelf(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(CONFIG_STACK, []uint16{0x1001, 0xB001})
	for range 100 {
		assert.NoError(cpu.Tick())
	}
	assert.True(cpu.Running)
	assert.Equal(uint16(1), cpu.Pc)
	assert.Equal(100, cpu.Ticks)
}

func TestExecuteError(t *testing.T) {
	assert := assert.New(t)

	config := CONFIG_STACK
	config.Strict = true
	cpu := NewCpu(config, nil)

	code := MakeCodeImm(OP_POP, 2, 0)
	err := cpu.Execute(code)
	assert.ErrorIs(err, ErrStackEmpty)
	assert.ErrorIs(err, ErrOpcode{})

	var eo ErrOpcode
	assert.True(errors.As(err, &eo))
	assert.Equal(code.Word, eo.Word)
	assert.Contains(err.Error(), "at opcode 0xa200 pop r2")
	assert.NotContains(err.Error(), "bad")
	assert.Equal(uint16(0), cpu.Pc)
	assert.Equal(0, cpu.Ticks)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := runProgram(t, CONFIG_STACK, []uint16{0x1064, 0x9000, 0x8000}, 10)
	text := cpu.String()
	assert.Contains(text, "pc: 03")
	assert.Contains(text, "r0: 0064 (100)")
	assert.Contains(text, "stack: 0064")
	assert.Contains(text, "state: halted")

	assert.Equal("regs: 0100 0000 0000 0000", cpu.Dump())
}
