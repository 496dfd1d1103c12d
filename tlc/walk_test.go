package tlc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/itchio/screw"
	"github.com/shadtest/direntdiff/tlc"
	"github.com/shadtest/direntdiff/wtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	w, err := screw.Create(path)
	wtest.Must(t, err)
	_, err = w.Write(make([]byte, size))
	wtest.Must(t, err)
	wtest.Must(t, w.Close())
}

func Test_Walk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "read_8+0.bin"), 8)
	writeFile(t, filepath.Join(dir, "dirent_8+0.bin"), 16)
	writeFile(t, filepath.Join(dir, "notes.txt"), 3)
	wtest.Must(t, screw.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	writeFile(t, filepath.Join(dir, "nested", "read_16+0.bin"), 100)

	container, err := tlc.Walk(dir, nil)
	wtest.Must(t, err)

	assert.Equal(t, []string{"dirent_8+0.bin", "notes.txt", "read_8+0.bin"}, container.Names())
	assert.Equal(t, int64(27), container.Size)
	assert.Equal(t, int64(16), container.Files[1].Offset)
	assert.Equal(t, int64(19), container.Files[1].OffsetEnd)
	assert.Contains(t, container.Stats(), "3 files")

	f, ok := container.Lookup("read_8+0.bin")
	require.True(t, ok)
	assert.Equal(t, int64(8), f.Size)

	_, ok = container.Lookup("read_16+0.bin")
	assert.False(t, ok, "subdirectories aren't listed")
}

func Test_WalkFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 1)
	writeFile(t, filepath.Join(dir, "b.txt"), 1)

	container, err := tlc.Walk(dir, func(fileInfo os.FileInfo) bool {
		return filepath.Ext(fileInfo.Name()) == ".bin"
	})
	wtest.Must(t, err)
	assert.Equal(t, []string{"a.bin"}, container.Names())
}

func Test_NonDirWalk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foobar")
	writeFile(t, path, 0)

	_, err := tlc.Walk(path, nil)
	assert.Error(t, err, "should refuse to walk non-directory")

	_, err = tlc.Walk(filepath.Join(dir, "missing"), nil)
	assert.Error(t, err)
}
