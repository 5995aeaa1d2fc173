package io

import (
	"io"
)

// Tape provides sequential byte output to an io.Writer.
// A Tape with no Output discards everything sent to it.
type Tape struct {
	Output io.Writer

	Written int // Bytes written since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the counter is reset.
func (tc *Tape) Rewind() {
	tc.Written = 0
}

// Send writes a byte to the output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	if err != nil {
		return
	}

	tc.Written++

	return
}
