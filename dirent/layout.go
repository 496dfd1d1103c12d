// Package dirent recognizes directory-entry records inside raw dumps.
//
// Dumps are not framed: records are found by trying a layout template at
// every offset of the buffer, and whatever doesn't match is accounted for
// as skipped bytes.
package dirent

import (
	"fmt"

	"github.com/shadtest/direntdiff/wire"
)

// Layout selects the field widths and order used to recognize records.
type Layout int

const (
	// Regular is the getdirentries-style record: u32 id, u16 reclen, u8 type, u8 namlen.
	Regular Layout = iota
	// Packed is the record a raw read returns on the packed subsystem:
	// four 32-bit fields (id, type, namlen, reclen).
	Packed
)

func (l Layout) String() string {
	switch l {
	case Regular:
		return "regular"
	case Packed:
		return "packed"
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// SelectLayout picks the layout from how the dump was captured. Only a
// raw read of a directory on the packed subsystem yields packed records,
// enumerating that same directory goes through the regular format.
func SelectLayout(packed bool, rawRead bool) Layout {
	if packed && rawRead {
		return Packed
	}
	return Regular
}

// MaxNameLength bounds the name field of any record.
const MaxNameLength = 255

// Template describes one record layout. Templates are built once and
// handed out by value.
type Template struct {
	Layout     Layout
	HeaderSize int

	FileID       wire.Field
	RecordLength wire.Field
	Type         wire.Field
	NameLength   wire.Field

	// TypePad must hold only null bytes (packed type tags are 32-bit).
	TypePad wire.Field

	types [256]bool
}

// Allows reports whether t is a legal entry-type tag for this layout.
func (t Template) Allows(typ EntryType) bool {
	return t.types[typ]
}

// AllowedTypes lists the legal entry-type tags in ascending order.
func (t Template) AllowedTypes() []EntryType {
	var res []EntryType
	for i, ok := range t.types {
		if ok {
			res = append(res, EntryType(i))
		}
	}
	return res
}

func newTemplate(t Template, allowed ...EntryType) Template {
	for _, typ := range allowed {
		t.types[typ] = true
	}
	return t
}

var (
	regularTemplate = newTemplate(Template{
		Layout:       Regular,
		HeaderSize:   8,
		FileID:       wire.Field{Offset: 0, Width: 4},
		RecordLength: wire.Field{Offset: 4, Width: 2},
		Type:         wire.Field{Offset: 6, Width: 1},
		NameLength:   wire.Field{Offset: 7, Width: 1},
	}, TypeFifo, TypeChar, TypeDir, TypeBlock, TypeRegular, TypeLink, TypeSocket, TypeWhiteout)

	packedTemplate = newTemplate(Template{
		Layout:       Packed,
		HeaderSize:   16,
		FileID:       wire.Field{Offset: 0, Width: 4},
		Type:         wire.Field{Offset: 4, Width: 1},
		TypePad:      wire.Field{Offset: 5, Width: 3},
		NameLength:   wire.Field{Offset: 8, Width: 4},
		RecordLength: wire.Field{Offset: 12, Width: 4},
	}, TypePackedFile, TypePackedDir, TypeDir, TypeRegular)
)

// TemplateFor returns the template of a layout. Unknown layouts get the
// regular template.
func TemplateFor(layout Layout) Template {
	if layout == Packed {
		return packedTemplate
	}
	return regularTemplate
}
