package wire

// WriteContext appends fixed-width fields to a growing buffer.
type WriteContext struct {
	buf []byte
}

func NewWriteContext() *WriteContext {
	return &WriteContext{}
}

func (w *WriteContext) Bytes() []byte {
	return w.buf
}

func (w *WriteContext) Len() int {
	return len(w.buf)
}

func (w *WriteContext) WriteUint(value uint64, width int) error {
	var scratch [8]byte
	switch width {
	case 1:
		scratch[0] = byte(value)
	case 2:
		ENDIANNESS.PutUint16(scratch[:], uint16(value))
	case 4:
		ENDIANNESS.PutUint32(scratch[:], uint32(value))
	case 8:
		ENDIANNESS.PutUint64(scratch[:], value)
	default:
		return ErrInvalidWidth
	}

	w.buf = append(w.buf, scratch[:width]...)
	return nil
}

func (w *WriteContext) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// Fill appends n copies of b.
func (w *WriteContext) Fill(b byte, n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, b)
	}
}

// PutUint encodes value at pos inside an already sized buffer.
func PutUint(buf []byte, pos int, value uint64, width int) error {
	if !ValidWidth(width) {
		return ErrInvalidWidth
	}
	if pos < 0 || pos+width > len(buf) {
		return ErrOutOfRange
	}

	switch width {
	case 1:
		buf[pos] = byte(value)
	case 2:
		ENDIANNESS.PutUint16(buf[pos:], uint16(value))
	case 4:
		ENDIANNESS.PutUint32(buf[pos:], uint32(value))
	case 8:
		ENDIANNESS.PutUint64(buf[pos:], value)
	}
	return nil
}
