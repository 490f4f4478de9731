package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqBytes(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i + 1)
	}
	return p
}

func TestBuffer_zeroed(t *testing.T) {
	buf := NewBuffer(5)
	require.Equal(t, uint(5), buf.Len())
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, buf.Bytes())
	assert.Equal(t, uint(0), NewBuffer(0).Len())
}

func TestBuffer_byteAccess(t *testing.T) {
	buf := NewBuffer(4)
	buf.SetByte(9, 3)
	assert.Equal(t, byte(9), buf.ByteAt(3))
	assert.PanicsWithValue(t, IncorrectIndexError{4, 4}, func() { buf.SetByte(1, 4) })
	assert.PanicsWithValue(t, IncorrectIndexError{10, 4}, func() { buf.ByteAt(10) })
}

func TestBuffer_WriteBytes(t *testing.T) {
	for size := 0; size <= 6; size++ {
		for start := 0; start <= 8; start++ {
			for n := 0; n <= 8; n++ {
				name := fmt.Sprintf("size:%v start:%v n:%v", size, start, n)
				buf := NewBuffer(uint(size))
				p := seqBytes(n)
				wrote := buf.WriteBytes(p, uint(start))

				expect := 0
				if start < size {
					expect = min(n, size-start)
				}
				require.Equal(t, uint(expect), wrote, name)
				if expect > 0 {
					got, ok := buf.ReadBytes(uint(start), uint(start)+wrote)
					require.True(t, ok, name)
					require.Equal(t, p[:expect], got, name)
				}
			}
		}
	}
}

func TestBuffer_FillBytes(t *testing.T) {
	for _, tc := range []struct {
		start, end uint
		n          uint
		ok         bool
		expect     []byte
	}{
		{0, 8, 8, true, []byte{7, 7, 7, 7, 7, 7, 7, 7}},
		{2, 4, 2, true, []byte{0, 0, 7, 7, 0, 0, 0, 0}},
		{6, 100, 2, true, []byte{0, 0, 0, 0, 0, 0, 7, 7}},
		{8, 8, 0, true, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{8, 12, 0, true, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{9, 12, 0, false, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{5, 3, 0, true, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
	} {
		t.Run(fmt.Sprintf("[%v, %v)", tc.start, tc.end), func(t *testing.T) {
			buf := NewBuffer(8)
			n, ok := buf.FillBytes(7, tc.start, tc.end)
			assert.Equal(t, tc.n, n, "expected fill count")
			assert.Equal(t, tc.ok, ok, "expected in range")
			assert.Equal(t, tc.expect, buf.Bytes())
		})
	}
}

func TestBuffer_ReadBytes(t *testing.T) {
	buf := bufferOf(seqBytes(8))

	got, ok := buf.ReadBytes(2, 5)
	require.True(t, ok)
	assert.Equal(t, []byte{3, 4, 5}, got)

	got, ok = buf.ReadBytes(6, 100)
	require.True(t, ok, "end is clamped")
	assert.Equal(t, []byte{7, 8}, got)

	got, ok = buf.ReadBytes(5, 2)
	require.True(t, ok)
	assert.Empty(t, got)

	_, ok = buf.ReadBytes(8, 9)
	assert.False(t, ok, "start == len is out of range")

	_, ok = NewBuffer(0).ReadBytes(0, 0)
	assert.False(t, ok, "nothing to read from an empty buffer")
}
