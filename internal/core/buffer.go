package core

// Buffer is a fixed size, zero initialized byte array.
type Buffer struct {
	data []byte
}

// NewBuffer allocates a buffer of size zero bytes.
func NewBuffer(size uint) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

func bufferOf(data []byte) *Buffer {
	buf := NewBuffer(uint(len(data)))
	copy(buf.data, data)
	return buf
}

func (buf *Buffer) Len() uint { return uint(len(buf.data)) }

// SetByte sets the byte at index, which must be less than Len.
func (buf *Buffer) SetByte(value byte, index uint) {
	buf.mustIndex(index)
	buf.data[index] = value
}

// ByteAt returns the byte at index, which must be less than Len.
func (buf *Buffer) ByteAt(index uint) byte {
	buf.mustIndex(index)
	return buf.data[index]
}

func (buf *Buffer) mustIndex(index uint) {
	if index >= buf.Len() {
		panic(IncorrectIndexError{index, buf.Len()})
	}
}

// WriteBytes copies as much of p as fits starting at start, returning the
// count written.
func (buf *Buffer) WriteBytes(p []byte, start uint) uint {
	if start >= buf.Len() {
		return 0
	}
	return uint(copy(buf.data[start:], p))
}

// FillBytes sets every byte in [start, end) to value, clamping end to Len.
// It returns false, writing nothing, if start is past Len.
func (buf *Buffer) FillBytes(value byte, start, end uint) (uint, bool) {
	if start > buf.Len() {
		return 0, false
	}
	end = buf.clamp(start, end)
	for i := start; i < end; i++ {
		buf.data[i] = value
	}
	return end - start, true
}

// ReadBytes returns the bytes in [start, end), clamping end to Len. It
// returns false if start is not less than Len. The returned slice aliases the
// buffer.
func (buf *Buffer) ReadBytes(start, end uint) ([]byte, bool) {
	if start >= buf.Len() {
		return nil, false
	}
	return buf.data[start:buf.clamp(start, end)], true
}

// Bytes returns the whole buffer contents, aliased.
func (buf *Buffer) Bytes() []byte { return buf.data }

func (buf *Buffer) clamp(start, end uint) uint {
	if n := buf.Len(); end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return end
}
