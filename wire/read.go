package wire

// ReadUint decodes an unsigned little-endian integer of the given width
// starting at pos. It returns false if the field doesn't fit in buf.
func ReadUint(buf []byte, pos int, width int) (uint64, bool) {
	if pos < 0 || pos+width > len(buf) {
		return 0, false
	}

	b := buf[pos : pos+width]
	switch width {
	case 1:
		return uint64(b[0]), true
	case 2:
		return uint64(ENDIANNESS.Uint16(b)), true
	case 4:
		return uint64(ENDIANNESS.Uint32(b)), true
	case 8:
		return ENDIANNESS.Uint64(b), true
	}
	return 0, false
}

// ReadField decodes f relative to a record starting at base.
func ReadField(buf []byte, base int, f Field) (uint64, bool) {
	return ReadUint(buf, base+f.Offset, f.Width)
}

// AllZero reports whether buf[from:from+n] is in range and only holds null bytes.
func AllZero(buf []byte, from int, n int) bool {
	if from < 0 || from+n > len(buf) {
		return false
	}
	for _, b := range buf[from : from+n] {
		if b != 0 {
			return false
		}
	}
	return true
}

// PrintableRun counts consecutive printable bytes starting at from,
// stopping at limit.
func PrintableRun(buf []byte, from int, limit int) int {
	if limit > len(buf) {
		limit = len(buf)
	}

	n := 0
	for i := from; i >= 0 && i < limit && IsPrintable(buf[i]); i++ {
		n++
	}
	return n
}

// NullRun counts consecutive null bytes starting at from, stopping at limit.
func NullRun(buf []byte, from int, limit int) int {
	if limit > len(buf) {
		limit = len(buf)
	}

	n := 0
	for i := from; i < limit && buf[i] == 0; i++ {
		n++
	}
	return n
}
