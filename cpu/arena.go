package cpu

const (
	MEMORY_SIZE    = 256 // Words of data memory.
	REGISTER_COUNT = 4   // General purpose registers.
	STACK_LIMIT    = 256 // Maximum stack depth in strict mode.
)
