package dirent

import "github.com/shadtest/direntdiff/wire"

// Scanner finds records of one layout. The zero value scans regular records.
type Scanner struct {
	tmpl Template
}

func NewScanner(layout Layout) *Scanner {
	return &Scanner{tmpl: TemplateFor(layout)}
}

// Template returns the template the scanner matches against.
func (s *Scanner) Template() Template {
	if s.tmpl.HeaderSize == 0 {
		return regularTemplate
	}
	return s.tmpl
}

// Scan walks buf left to right and returns every record it recognizes,
// in order. Bytes that don't form a record are stepped over one at a
// time. No match at all yields an empty result.
func (s *Scanner) Scan(buf []byte) []Dirent {
	var res []Dirent
	tmpl := s.Template()

	off := 0
	for off < len(buf) {
		d, ok := tmpl.match(buf, off)
		if !ok {
			off++
			continue
		}

		res = append(res, d)
		off = d.End
	}
	return res
}

// Scan is a one-off scan with the given template.
func Scan(buf []byte, tmpl Template) []Dirent {
	s := &Scanner{tmpl: tmpl}
	return s.Scan(buf)
}

// ScanLayout is a one-off scan with the template of layout.
func ScanLayout(buf []byte, layout Layout) []Dirent {
	return NewScanner(layout).Scan(buf)
}

// match tries to read one record starting at off.
func (t Template) match(buf []byte, off int) (Dirent, bool) {
	var d Dirent

	typ, ok := wire.ReadField(buf, off, t.Type)
	if !ok || !t.types[typ] {
		return d, false
	}

	if t.TypePad.Width > 0 && !wire.AllZero(buf, off+t.TypePad.Offset, t.TypePad.Width) {
		return d, false
	}

	// the name is the printable run after the header, null-terminated;
	// the name length field is kept as read
	nameStart := off + t.HeaderSize
	n := wire.PrintableRun(buf, nameStart, nameStart+MaxNameLength+1)
	if n < 1 || n > MaxNameLength {
		return d, false
	}

	nameEnd := nameStart + n
	if nameEnd >= len(buf) || buf[nameEnd] != 0 {
		return d, false
	}

	namlen, ok := wire.ReadField(buf, off, t.NameLength)
	if !ok {
		return d, false
	}
	reclen, ok := wire.ReadField(buf, off, t.RecordLength)
	if !ok {
		return d, false
	}
	fileID, ok := wire.ReadField(buf, off, t.FileID)
	if !ok {
		return d, false
	}

	// padding runs up to the declared record boundary when that boundary
	// makes sense, otherwise as far as the nulls go
	limit := len(buf)
	if boundary := off + int(reclen); boundary > nameEnd && boundary <= len(buf) {
		limit = boundary
	}

	d = Dirent{
		FileID:       uint32(fileID),
		Type:         EntryType(typ),
		NameLength:   int(namlen),
		RecordLength: int(reclen),
		Name:         buf[nameStart:nameEnd:nameEnd],
		Padding:      wire.NullRun(buf, nameEnd, limit),
		Offset:       off,
		End:          nameEnd + 1,
	}
	return d, true
}
