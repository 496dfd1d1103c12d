// Package tlc lists a directory of dumps as a single container, files
// laid end to end in name order.
package tlc

import (
	"fmt"
	"os"
	"sort"

	"github.com/itchio/headway/united"
)

// File is one dump in the container.
type File struct {
	Path string
	Mode os.FileMode

	Size      int64
	Offset    int64
	OffsetEnd int64
}

type Container struct {
	// Total size
	Size int64

	// All regular files directly under the base path, sorted by path
	Files []File
}

// Names returns the path of every file, in container order.
func (c *Container) Names() []string {
	res := make([]string, 0, len(c.Files))
	for _, f := range c.Files {
		res = append(res, f.Path)
	}
	return res
}

// Lookup finds a file by path.
func (c *Container) Lookup(path string) (*File, bool) {
	i := sort.Search(len(c.Files), func(i int) bool {
		return c.Files[i].Path >= path
	})
	if i < len(c.Files) && c.Files[i].Path == path {
		return &c.Files[i], true
	}
	return nil, false
}

func (c *Container) Stats() string {
	return fmt.Sprintf("%d files, %s", len(c.Files), united.FormatBytes(c.Size))
}
