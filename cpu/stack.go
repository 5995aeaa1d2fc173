package cpu

// The operand stack lives at the top of Memory and grows down. Sp counts
// the pushed words, so the top of the stack is at MEMORY_SIZE - Sp.

// Push writes value to Memory[MEMORY_SIZE - (++Sp)].
func (cpu *Cpu) Push(value uint16) (err error) {
	if cpu.Config.Strict && cpu.Sp >= STACK_LIMIT {
		err = ErrStackFull
		return
	}

	cpu.Sp++
	cpu.Memory.Store(MEMORY_SIZE-cpu.Sp, value)

	return
}

// Pop reads Memory[MEMORY_SIZE - (Sp--)].
//
// Outside of strict mode an empty stack is not detected: the read wraps to
// Memory[0] and Sp wraps to 0xffff.
func (cpu *Cpu) Pop() (value uint16, err error) {
	if cpu.Config.Strict && cpu.Sp == 0 {
		err = ErrStackEmpty
		return
	}

	value = cpu.Memory.Load(MEMORY_SIZE - cpu.Sp)
	cpu.Sp--

	return
}

// Peek returns the top of the stack without popping it.
func (cpu *Cpu) Peek() (value uint16, ok bool) {
	if cpu.Sp == 0 {
		return
	}

	return cpu.Memory.Load(MEMORY_SIZE - cpu.Sp), true
}
