// Package wire decodes and encodes the fixed-width little-endian fields
// that make up a dirent record.
package wire

import (
	"encoding/binary"
	"errors"
)

// ENDIANNESS is the byte order of every integer field in a dump.
var ENDIANNESS = binary.LittleEndian

var (
	ErrInvalidWidth = errors.New("Invalid field width")
	ErrOutOfRange   = errors.New("Field out of range")
)

// Field locates a fixed-width integer inside a record header.
type Field struct {
	Offset int
	Width  int
}

// End returns the position right after the field, relative to the record start.
func (f Field) End() int {
	return f.Offset + f.Width
}

// ValidWidth reports whether width is one of 1, 2, 4 or 8.
func ValidWidth(width int) bool {
	switch width {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// IsPrintable reports whether b is printable ASCII (space to tilde).
func IsPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}
