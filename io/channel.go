// Package io provides the host output channels for the cvm machine.
// The print syscall streams bytes into a Channel: a Tape forwards them to an
// io.Writer, and a Temporary keeps them in a bounded buffer for inspection.
package io

// Channel defines the interface for all output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single byte to the channel.
	Send(value byte) error
}
