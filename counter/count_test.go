package counter_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/shadtest/direntdiff/counter"
	"github.com/stretchr/testify/assert"
)

func Test_Count(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5, 6}, 6)
	cr := counter.NewReader(bytes.NewReader(data))

	_, err := io.Copy(io.Discard, cr)
	assert.NoError(t, err)
	assert.Equal(t, cr.Count(), int64(36))
}

func Test_Callback(t *testing.T) {
	var seen []int64
	onRead := func(c int64) { seen = append(seen, c) }

	data := bytes.Repeat([]byte{0xaa}, 100)
	cr := counter.NewReaderCallback(onRead, bytes.NewReader(data))

	out, err := io.ReadAll(cr)
	assert.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, int64(100), cr.Count())
	assert.NotEmpty(t, seen)
	assert.Equal(t, int64(100), seen[len(seen)-1])
}

func Test_Progress(t *testing.T) {
	last := -1.0
	data := bytes.Repeat([]byte{0}, 64)
	cr := counter.NewReaderProgress(32, func(alpha float64) { last = alpha }, bytes.NewReader(data))

	_, err := io.ReadAll(cr)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, last, "progress is capped")

	last = -1.0
	cr = counter.NewReaderProgress(0, func(alpha float64) { last = alpha }, bytes.NewReader(data))
	_, err = io.ReadAll(cr)
	assert.NoError(t, err)
	assert.Equal(t, -1.0, last, "unknown totals report nothing")
}
