package io

// Temporary implements a circular buffer for temporary byte storage.
// It keeps bytes in arrival order up to a fixed capacity.
type Temporary struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Channel = (*Temporary)(nil)

// Rewind resets the temporary storage to empty, resetting indices and
// reinitializing the data buffer.
func (temp *Temporary) Rewind() {
	temp.ReadIndex = 0
	temp.WriteIndex = 0
	temp.Size = 0
	temp.Data = make([]byte, temp.Capacity)
}

// Send writes a byte to the buffer at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Send(value byte) (err error) {
	if temp.Size >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	if len(temp.Data) != temp.Capacity {
		temp.Rewind()
	}

	temp.Data[temp.WriteIndex] = value

	temp.WriteIndex++
	if temp.WriteIndex == temp.Capacity {
		temp.WriteIndex = 0
	}
	temp.Size++

	return
}

// Bytes returns a copy of the buffered bytes, oldest first.
func (temp *Temporary) Bytes() (out []byte) {
	if temp.Size == 0 {
		return
	}

	out = make([]byte, temp.Size)
	index := temp.ReadIndex
	for n := range out {
		out[n] = temp.Data[index]
		index++
		if index == temp.Capacity {
			index = 0
		}
	}

	return
}

// String returns the buffered bytes as a string, leaving them buffered.
func (temp *Temporary) String() string {
	return string(temp.Bytes())
}
