package cpu

import (
	"log"
)

// Syscall numbers.
const (
	SYSCALL_PRINT = uint8(0) // Print the NUL terminated string at an address.
)

// syscall performs the host request selected by number.
// Unknown syscalls are accepted and do nothing. A failed print leaves the
// stack as it was, although bytes already sent stay sent.
func (cpu *Cpu) syscall(number uint8) (err error) {
	if cpu.Verbose {
		log.Printf("cpu: syscall %d", number)
	}

	switch number {
	case SYSCALL_PRINT:
		var addr uint16
		switch cpu.Config.Syscall {
		case SYSCALL_STACK:
			sp := cpu.Sp
			defer func() {
				if err != nil {
					cpu.Sp = sp
				}
			}()
			addr, err = cpu.Pop()
			if err != nil {
				return
			}
		default:
			addr = cpu.Register[0]
		}
		err = cpu.print(addr)
	}

	return
}

// print sends the little-endian byte string at word addr to the console,
// stopping at, and not sending, the first zero byte.
func (cpu *Cpu) print(addr uint16) (err error) {
	if cpu.console == nil {
		if cpu.Config.Strict {
			err = ErrChannelInvalid
		}
		return
	}

	for value := range cpu.Memory.Bytes(addr) {
		if value == 0 {
			break
		}
		err = cpu.console.Send(value)
		if err != nil {
			return
		}
	}

	return
}
