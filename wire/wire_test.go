package wire_test

import (
	"testing"

	"github.com/shadtest/direntdiff/wire"
	"github.com/stretchr/testify/assert"
)

func Test_ReadUint(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	v, ok := wire.ReadUint(buf, 0, 1)
	assert.True(t, ok)
	assert.EqualValues(t, 0x01, v)

	v, ok = wire.ReadUint(buf, 1, 2)
	assert.True(t, ok)
	assert.EqualValues(t, 0x0302, v)

	v, ok = wire.ReadUint(buf, 4, 4)
	assert.True(t, ok)
	assert.EqualValues(t, 0x08070605, v)

	v, ok = wire.ReadUint(buf, 0, 8)
	assert.True(t, ok)
	assert.EqualValues(t, uint64(0x0807060504030201), v)

	_, ok = wire.ReadUint(buf, 6, 4)
	assert.False(t, ok, "field past the end of the buffer")

	_, ok = wire.ReadUint(buf, -1, 1)
	assert.False(t, ok)

	_, ok = wire.ReadUint(buf, 0, 3)
	assert.False(t, ok, "odd widths are not fields")
}

func Test_ReadField(t *testing.T) {
	buf := []byte{0xaa, 0xaa, 0x10, 0x00, 0x20, 0x00}
	v, ok := wire.ReadField(buf, 2, wire.Field{Offset: 2, Width: 2})
	assert.True(t, ok)
	assert.EqualValues(t, 0x20, v)
	assert.Equal(t, 4, wire.Field{Offset: 2, Width: 2}.End())
}

func Test_ByteClasses(t *testing.T) {
	buf := []byte("ab~ \x00\x00\x00\x7f")

	assert.Equal(t, 4, wire.PrintableRun(buf, 0, len(buf)))
	assert.Equal(t, 2, wire.PrintableRun(buf, 0, 2))
	assert.Equal(t, 2, wire.PrintableRun(buf, 2, 100))
	assert.Equal(t, 0, wire.PrintableRun(buf, 7, len(buf)), "DEL is not printable")
	assert.Equal(t, 0, wire.PrintableRun(buf, 10, len(buf)), "out of range")

	assert.True(t, wire.AllZero(buf, 4, 3))
	assert.False(t, wire.AllZero(buf, 3, 3))
	assert.False(t, wire.AllZero(buf, 6, 5))

	assert.Equal(t, 3, wire.NullRun(buf, 4, len(buf)))
	assert.Equal(t, 2, wire.NullRun(buf, 4, 6))
	assert.Equal(t, 0, wire.NullRun(buf, 0, len(buf)))
	assert.Equal(t, 3, wire.NullRun(buf, 4, 100))
}

func Test_WriteContext(t *testing.T) {
	wc := wire.NewWriteContext()
	assert.NoError(t, wc.WriteUint(0x11223344, 4))
	assert.NoError(t, wc.WriteUint(0x5566, 2))
	assert.NoError(t, wc.WriteUint(0x77, 1))
	wc.WriteBytes([]byte("x"))
	wc.Fill(0, 2)
	assert.Equal(t, wire.ErrInvalidWidth, wc.WriteUint(1, 3))

	assert.Equal(t, []byte{0x44, 0x33, 0x22, 0x11, 0x66, 0x55, 0x77, 'x', 0, 0}, wc.Bytes())
	assert.Equal(t, 10, wc.Len())

	buf := make([]byte, 4)
	assert.NoError(t, wire.PutUint(buf, 2, 0xbeef, 2))
	assert.Equal(t, []byte{0, 0, 0xef, 0xbe}, buf)
	assert.Equal(t, wire.ErrOutOfRange, wire.PutUint(buf, 3, 1, 2))
	assert.Equal(t, wire.ErrInvalidWidth, wire.PutUint(buf, 0, 1, 5))
}
