package cpu

import (
	"errors"

	"github.com/ezrec/cvm/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrStackEmpty     = errors.New(f("stack empty"))
	ErrStackFull      = errors.New(f("stack full"))
	ErrPcRange        = errors.New(f("pc out of range"))
	ErrChannelInvalid = errors.New(f("channel invalid"))
)

type ErrConfigUnknown string

func (ec ErrConfigUnknown) Error() string {
	return f("config %v unknown", string(ec))
}

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("at opcode 0x%04x %v", eo.Word, Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
