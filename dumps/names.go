// Package dumps drives a comparison run: it pairs the dumps of two
// directories by name, reads each pair and hands it to the diff engine.
package dumps

import (
	"path"
	"regexp"
	"strconv"

	"github.com/shadtest/direntdiff/dirent"
)

// Hints is what a dump's file name says about how it was captured.
type Hints struct {
	// Packed is set for dumps of a directory on the packed subsystem.
	Packed bool
	// RawRead is set for dumps of read() on the directory, as opposed
	// to getdirentries() listings.
	RawRead bool

	// BufferSize and StartOffset are the read size and seek position the
	// capture used, when the name carries them.
	BufferSize  int64
	StartOffset int64
}

// Layout picks the record layout for the dump.
func (h Hints) Layout() dirent.Layout {
	return dirent.SelectLayout(h.Packed, h.RawRead)
}

const (
	readPrefix   = "read"
	direntPrefix = "dirent"
)

var (
	dumpNameRe   = regexp.MustCompile(`^(read|dirent)_(PFS_)?(.*)\.bin$`)
	dumpParamsRe = regexp.MustCompile(`^(\d+)\+(\d+)$`)
)

// ParseName recognizes read_[PFS_]<size>+<offset>.bin and
// dirent_[PFS_]<size>+<offset>.bin. Any other name isn't a dirent dump.
func ParseName(name string) (Hints, bool) {
	var h Hints

	m := dumpNameRe.FindStringSubmatch(path.Base(name))
	if m == nil {
		return h, false
	}

	h.RawRead = m[1] == readPrefix
	h.Packed = m[2] != ""

	if p := dumpParamsRe.FindStringSubmatch(m[3]); p != nil {
		// both groups are digit runs, only overflow can fail
		size, err := strconv.ParseInt(p[1], 10, 64)
		if err == nil {
			h.BufferSize = size
		}
		offset, err := strconv.ParseInt(p[2], 10, 64)
		if err == nil {
			h.StartOffset = offset
		}
	}

	return h, true
}

// Capture names the capture method, as found in dump names.
func (h Hints) Capture() string {
	if h.RawRead {
		return readPrefix
	}
	return direntPrefix
}
