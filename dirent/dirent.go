package dirent

import (
	"bytes"
	"fmt"
)

// EntryType is the kind tag of a record.
type EntryType uint8

// Tags as found in dumps. The packed subsystem reuses 2 for files.
const (
	TypeUnknown    EntryType = 0
	TypeFifo       EntryType = 1
	TypeChar       EntryType = 2
	TypePackedFile EntryType = 2
	TypePackedDir  EntryType = 3
	TypeDir        EntryType = 4
	TypeBlock      EntryType = 6
	TypeRegular    EntryType = 8
	TypeLink       EntryType = 10
	TypeSocket     EntryType = 12
	TypeWhiteout   EntryType = 14
)

var typeNames = map[EntryType]string{
	TypeUnknown:   "unknown",
	TypeFifo:      "fifo",
	TypeChar:      "chr",
	TypePackedDir: "pdir",
	TypeDir:       "dir",
	TypeBlock:     "blk",
	TypeRegular:   "reg",
	TypeLink:      "lnk",
	TypeSocket:    "sock",
	TypeWhiteout:  "wht",
}

func (t EntryType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Dirent is one record recognized in a dump. Name aliases the scanned
// buffer, which is never written to.
type Dirent struct {
	FileID uint32
	Type   EntryType

	// NameLength and RecordLength are the header fields as declared,
	// neither has to agree with what was actually found.
	NameLength   int
	RecordLength int

	Name []byte

	// Padding is the number of null bytes after the name, terminator included.
	Padding int

	// Offset is where the record starts in the buffer, End is right past
	// the name terminator.
	Offset int
	End    int
}

// Key packs the last two name bytes, the offset and the record length
// into one value. Different keys mean different records.
func (d Dirent) Key() uint64 {
	var tail uint64
	switch n := len(d.Name); {
	case n >= 2:
		tail = uint64(d.Name[n-2])<<8 | uint64(d.Name[n-1])
	case n == 1:
		tail = uint64(d.Name[0])
	}
	return tail<<48 | uint64(uint32(d.Offset))<<16 | uint64(uint16(d.RecordLength))
}

// Equal compares every field but FileID, which the two systems are free
// to assign differently.
func (d Dirent) Equal(o Dirent) bool {
	if d.Key() != o.Key() {
		return false
	}

	return d.Offset == o.Offset &&
		d.Type == o.Type &&
		d.NameLength == o.NameLength &&
		d.RecordLength == o.RecordLength &&
		d.Padding == o.Padding &&
		bytes.Equal(d.Name, o.Name)
}

// Equal is Dirent.Equal as a function.
func Equal(a, b Dirent) bool {
	return a.Equal(b)
}

// Consistent reports whether the declared name length is the one found
// and the declared record length covers the header, the name and its
// terminator. Scanning never rejects a record on this.
func (d Dirent) Consistent(t Template) bool {
	return d.NameLength == len(d.Name) && d.RecordLength >= t.HeaderSize+len(d.Name)+1
}

// Span is the number of bytes the match consumed.
func (d Dirent) Span() int {
	return d.End - d.Offset
}

func (d Dirent) String() string {
	return fmt.Sprintf("%q (%s, reclen %d, at %d)", d.Name, d.Type, d.RecordLength, d.Offset)
}
