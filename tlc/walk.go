package tlc

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// FilterFunc decides whether a file makes it into the container.
type FilterFunc func(fileInfo os.FileInfo) bool

// Walk lists the regular files directly under basePath. Subdirectories
// aren't descended into: dumps of one run all live side by side.
func Walk(basePath string, filter FilterFunc) (*Container, error) {
	if filter == nil {
		filter = func(fileInfo os.FileInfo) bool {
			return true
		}
	}

	stats, err := os.Lstat(basePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !stats.IsDir() {
		return nil, errors.Errorf("%s: not a directory", basePath)
	}

	var files []File

	onEntry := func(fullPath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			if os.IsPermission(err) && fullPath != basePath {
				// unreadable entries are left out
				return nil
			}
			return err
		}

		if fullPath == basePath {
			return nil
		}

		if fileInfo.IsDir() {
			return filepath.SkipDir
		}

		if !fileInfo.Mode().IsRegular() || !filter(fileInfo) {
			return nil
		}

		path, err := filepath.Rel(basePath, fullPath)
		if err != nil {
			return err
		}

		files = append(files, File{
			Path: filepath.ToSlash(path),
			Mode: fileInfo.Mode(),
			Size: fileInfo.Size(),
		})
		return nil
	}

	err = filepath.Walk(basePath, onEntry)
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", basePath)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	totalOffset := int64(0)
	for i := range files {
		files[i].Offset = totalOffset
		totalOffset += files[i].Size
		files[i].OffsetEnd = totalOffset
	}

	container := &Container{Size: totalOffset, Files: files}
	return container, nil
}
