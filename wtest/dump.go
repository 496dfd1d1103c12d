package wtest

import (
	"io"
	"math/rand"

	"github.com/itchio/randsource"
	"github.com/shadtest/direntdiff/dirent"
	"github.com/shadtest/direntdiff/wire"
)

// Record is a record to encode into a synthetic dump.
type Record struct {
	FileID uint32
	Type   dirent.EntryType
	Name   string

	// NameLength is written as-is when non-zero, instead of len(Name).
	NameLength int

	// RecordLength is written as-is when non-zero. Otherwise it is the
	// header, name and terminator rounded up to Align.
	RecordLength int
	Align        int
}

// Dump assembles a buffer the way the capture tool would lay it out.
type Dump struct {
	tmpl    dirent.Template
	wc      *wire.WriteContext
	offsets []int
	ends    []int
}

func NewDump(layout dirent.Layout) *Dump {
	return &Dump{
		tmpl: dirent.TemplateFor(layout),
		wc:   wire.NewWriteContext(),
	}
}

// Record appends r, padded with nulls up to its record length. At least
// one null terminates the name.
func (d *Dump) Record(r Record) *Dump {
	tmpl := d.tmpl
	natural := tmpl.HeaderSize + len(r.Name) + 1

	reclen := r.RecordLength
	if reclen == 0 {
		reclen = natural
		if r.Align > 1 {
			reclen = (reclen + r.Align - 1) / r.Align * r.Align
		}
	}

	header := make([]byte, tmpl.HeaderSize)
	put := func(f wire.Field, v uint64) {
		if err := wire.PutUint(header, f.Offset, v, f.Width); err != nil {
			panic(err)
		}
	}
	put(tmpl.FileID, uint64(r.FileID))
	put(tmpl.Type, uint64(r.Type))
	namlen := r.NameLength
	if namlen == 0 {
		namlen = len(r.Name)
	}
	put(tmpl.NameLength, uint64(namlen))
	put(tmpl.RecordLength, uint64(reclen))

	start := d.wc.Len()
	d.offsets = append(d.offsets, start)
	d.ends = append(d.ends, start+natural)

	d.wc.WriteBytes(header)
	d.wc.WriteBytes([]byte(r.Name))
	pad := reclen - tmpl.HeaderSize - len(r.Name)
	if pad < 1 {
		pad = 1
	}
	d.wc.Fill(0, pad)
	return d
}

// Fill appends n copies of b.
func (d *Dump) Fill(b byte, n int) *Dump {
	d.wc.Fill(b, n)
	return d
}

// Noise appends n pseudo-random bytes that are neither printable nor a
// legal entry type, so they can never be part of a record.
func (d *Dump) Noise(seed int64, n int) *Dump {
	prng := &randsource.Reader{
		Source: rand.New(rand.NewSource(seed)),
	}

	noise := make([]byte, n)
	if _, err := io.ReadFull(prng, noise); err != nil {
		panic(err)
	}
	for i := range noise {
		noise[i] |= 0x80
	}
	d.wc.WriteBytes(noise)
	return d
}

// Bytes returns a copy of the dump so far.
func (d *Dump) Bytes() []byte {
	return append([]byte(nil), d.wc.Bytes()...)
}

// Offsets lists where each appended record starts.
func (d *Dump) Offsets() []int {
	return d.offsets
}

// Ends lists where the scanner is expected to end each appended record.
func (d *Dump) Ends() []int {
	return d.ends
}
