package dumps_test

import (
	"testing"

	"github.com/shadtest/direntdiff/dirent"
	"github.com/shadtest/direntdiff/dumps"
	"github.com/stretchr/testify/assert"
)

func Test_ParseName(t *testing.T) {
	type scenario struct {
		name   string
		hints  dumps.Hints
		layout dirent.Layout
	}

	scenarios := []scenario{
		{
			name:   "read_512+0.bin",
			hints:  dumps.Hints{RawRead: true, BufferSize: 512, StartOffset: 0},
			layout: dirent.Regular,
		},
		{
			name:   "read_PFS_65537+1234.bin",
			hints:  dumps.Hints{Packed: true, RawRead: true, BufferSize: 65537, StartOffset: 1234},
			layout: dirent.Packed,
		},
		{
			name:   "dirent_7+42.bin",
			hints:  dumps.Hints{BufferSize: 7, StartOffset: 42},
			layout: dirent.Regular,
		},
		{
			name:   "dirent_PFS_4096+96.bin",
			hints:  dumps.Hints{Packed: true, BufferSize: 4096, StartOffset: 96},
			layout: dirent.Regular,
		},
		{
			name:   "dumps/dirent_custom.bin",
			hints:  dumps.Hints{},
			layout: dirent.Regular,
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			hints, ok := dumps.ParseName(s.name)
			assert.True(t, ok)
			assert.Equal(t, s.hints, hints)
			assert.Equal(t, s.layout, hints.Layout())
		})
	}

	for _, name := range []string{"notes.txt", "read_512+0.txt", "stat_512+0.bin", "xread_8+0.bin", "read.bin"} {
		_, ok := dumps.ParseName(name)
		assert.False(t, ok, "%s is not a dirent dump", name)
	}

	h, _ := dumps.ParseName("read_8+0.bin")
	assert.Equal(t, "read", h.Capture())
	h, _ = dumps.ParseName("dirent_8+0.bin")
	assert.Equal(t, "dirent", h.Capture())
}
