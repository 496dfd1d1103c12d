package counter

import "io"

// Reader counts bytes read from the underlying reader.
type Reader struct {
	count  int64
	reader io.Reader

	onRead CountCallback
}

var _ io.Reader = (*Reader)(nil)

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: reader}
}

func NewReaderCallback(onRead CountCallback, reader io.Reader) *Reader {
	return &Reader{
		reader: reader,
		onRead: onRead,
	}
}

// NewReaderProgress reports progress as a fraction of total after each read.
func NewReaderProgress(total int64, onProgress func(alpha float64), reader io.Reader) *Reader {
	return NewReaderCallback(func(count int64) {
		if total <= 0 {
			return
		}
		alpha := float64(count) / float64(total)
		if alpha > 1 {
			alpha = 1
		}
		onProgress(alpha)
	}, reader)
}

func (r *Reader) Count() int64 {
	return r.count
}

func (r *Reader) Read(buffer []byte) (n int, err error) {
	n, err = r.reader.Read(buffer)

	r.count += int64(n)
	if n > 0 && r.onRead != nil {
		r.onRead(r.count)
	}
	return
}
