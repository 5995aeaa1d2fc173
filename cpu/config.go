package cpu

import (
	"fmt"
	"strings"
)

// MemoryLayout selects where the program lives.
type MemoryLayout int

const (
	LAYOUT_UNIFIED = MemoryLayout(0) // unified
	LAYOUT_SPLIT   = MemoryLayout(1) // split
)

func (ml MemoryLayout) String() string {
	switch ml {
	case LAYOUT_UNIFIED:
		return "unified"
	case LAYOUT_SPLIT:
		return "split"
	}
	return fmt.Sprintf("MemoryLayout(%d)", int(ml))
}

// SyscallSource selects where syscall 0 finds its string address.
type SyscallSource int

const (
	SYSCALL_REGISTER = SyscallSource(0) // r0
	SYSCALL_STACK    = SyscallSource(1) // stack
)

func (ss SyscallSource) String() string {
	switch ss {
	case SYSCALL_REGISTER:
		return "r0"
	case SYSCALL_STACK:
		return "stack"
	}
	return fmt.Sprintf("SyscallSource(%d)", int(ss))
}

// Config selects one of the machine variants at construction time.
type Config struct {
	Layout  MemoryLayout  // Unified or split code and data.
	Stack   bool          // Enables push, pop and jump.
	Syscall SyscallSource // Address source of the print syscall.
	Strict  bool          // Fault on stack misuse and out of range fetch.
}

var (
	CONFIG_BASIC = Config{Layout: LAYOUT_UNIFIED, Syscall: SYSCALL_REGISTER}
	CONFIG_SPLIT = Config{Layout: LAYOUT_SPLIT, Syscall: SYSCALL_REGISTER}
	CONFIG_STACK = Config{Layout: LAYOUT_UNIFIED, Stack: true, Syscall: SYSCALL_STACK}
)

var _config_presets = map[string]Config{
	"basic": CONFIG_BASIC,
	"split": CONFIG_SPLIT,
	"stack": CONFIG_STACK,
}

// ParseConfig returns the preset configuration with the given name.
func ParseConfig(name string) (config Config, err error) {
	config, ok := _config_presets[strings.ToLower(name)]
	if !ok {
		err = ErrConfigUnknown(name)
	}
	return
}

// String returns the preset name, or a field listing for custom configs.
func (config Config) String() string {
	plain := config
	plain.Strict = false
	for name, preset := range _config_presets {
		if plain == preset {
			if config.Strict {
				return name + "+strict"
			}
			return name
		}
	}

	return fmt.Sprintf("layout=%v stack=%v syscall=%v strict=%v",
		config.Layout, config.Stack, config.Syscall, config.Strict)
}
