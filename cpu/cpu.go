package cpu

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/ezrec/cvm/io"
)

// Channel is an output channel interface.
type Channel io.Channel

// Cpu is the simulation context for the cvm register machine.
type Cpu struct {
	Verbose bool   // Set to enable verbose logging.
	Config  Config // Machine variant, fixed at construction.

	Running  bool                   // Cleared by the halt instruction.
	Pc       uint16                 // Address of the next instruction.
	Sp       uint16                 // Operand stack depth.
	Register [REGISTER_COUNT]uint16 // Register bank.
	Memory   Memory                 // Data memory; also code when unified.

	Ticks int // Instructions executed.

	code    []uint16 // Read-only code array of a split layout.
	console Channel  // Print syscall output.
}

// NewCpu creates a running machine with program loaded according to
// the memory layout of config.
func NewCpu(config Config, program []uint16) (cpu *Cpu) {
	cpu = &Cpu{
		Config:  config,
		Running: true,
	}

	switch config.Layout {
	case LAYOUT_SPLIT:
		cpu.code = slices.Clone(program)
	default:
		cpu.Memory.Copy(program)
	}

	return
}

// SetConsole attaches the channel that receives syscall output.
func (cpu *Cpu) SetConsole(console Channel) {
	cpu.console = console
}

// Halted returns true once a halt instruction has executed.
func (cpu *Cpu) Halted() bool {
	return !cpu.Running
}

// Dump returns the register bank as a single line.
func (cpu *Cpu) Dump() string {
	return fmt.Sprintf("regs: %04d %04d %04d %04d",
		cpu.Register[0], cpu.Register[1], cpu.Register[2], cpu.Register[3])
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "sp",
		"r0", "r1", "r2", "r3",
		"stack",
		"state",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "sp":
			strval = fmt.Sprintf("%d", cpu.Sp)
		case "r0", "r1", "r2", "r3":
			val := cpu.Register[byte(reg[1]-'0')]
			strval = fmt.Sprintf("%04X (%d)", val, val)
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%04X", val)
			} else {
				strval = "----"
			}
		case "state":
			strval = "running"
			if cpu.Halted() {
				strval = "halted"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Fetch fetches the instruction at the program counter.
//
// A split layout fetch past the end of the code yields a no-op.
func (cpu *Cpu) Fetch() (code Code, err error) {
	switch cpu.Config.Layout {
	case LAYOUT_SPLIT:
		if int(cpu.Pc) >= len(cpu.code) {
			if cpu.Config.Strict {
				err = ErrPcRange
			}
			return
		}
		code = Code{Word: cpu.code[cpu.Pc]}
	default:
		if cpu.Config.Strict && cpu.Pc >= MEMORY_SIZE {
			err = ErrPcRange
			return
		}
		code = Code{Word: cpu.Memory.Load(cpu.Pc)}
	}

	return
}

// Tick executes a single instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		err = ErrHalted
		return
	}

	code, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(code)

	return
}

// Run ticks until the machine halts. There is no step limit.
func (cpu *Cpu) Run() (err error) {
	for cpu.Running {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction.
//
// The program counter advance is computed before the operation runs, so a
// jump replaces it rather than being incremented past its target. On error
// neither the program counter nor the tick count changes.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	next_pc := cpu.Pc + 1

	ins := code.Decode()
	reg := &cpu.Register
	r1 := ins.R1 % REGISTER_COUNT
	r2 := ins.R2 % REGISTER_COUNT
	r3 := ins.R3 % REGISTER_COUNT

	op := ins.Op
	if op.Stack() && !cpu.Config.Stack {
		op = OP_NOOP
	}

	switch op {
	case OP_NOOP:
		// pass
	case OP_LOADI:
		reg[r1] = uint16(ins.Imm)
	case OP_ADD:
		reg[r1] = reg[r2] + reg[r3]
	case OP_SHR:
		reg[r1] = reg[r2] >> ins.R3
	case OP_LOAD:
		reg[r1] = cpu.Memory.Load(uint16(ins.Imm))
	case OP_STORE:
		cpu.Memory.Store(uint16(ins.Imm), reg[r1])
	case OP_SYSCALL:
		err = cpu.syscall(ins.Imm)
		if err != nil {
			return
		}
	case OP_SHL:
		reg[r1] = reg[r2] << ins.R3
	case OP_HALT:
		cpu.Running = false
	case OP_PUSH:
		err = cpu.Push(reg[r1])
		if err != nil {
			return
		}
	case OP_POP:
		var value uint16
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		reg[r1] = value
	case OP_JUMP:
		next_pc = uint16(ins.Imm)
	default:
		// Undefined operations do nothing.
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}
