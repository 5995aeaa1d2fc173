package emulator

import (
	"errors"

	"github.com/ezrec/cvm/translate"
)

var f = translate.From

var (
	// Emulator errors
	ErrBudget         = errors.New(f("step budget exhausted"))
	ErrProgramMissing = errors.New(f("program missing"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%02x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpect is an expectation that evaluated to False.
type ErrExpect string

func (err ErrExpect) Error() string {
	return f("expectation '%v' failed", string(err))
}

// ErrExpression is an expression that did not yield a boolean.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a boolean expression", string(err))
}
