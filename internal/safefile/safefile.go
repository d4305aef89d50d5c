// Package safefile opens files for reading with regular-file checks.
package safefile

import (
	"errors"
	"os"
)

// ErrNotRegularFile is returned for symlinks, directories, FIFOs, devices,
// and sockets.
var ErrNotRegularFile = errors.New("not a regular file")

// OpenRegular opens path and verifies it is a regular file, both before the
// open (Lstat, so symlinks are rejected rather than followed) and after
// (fstat on the descriptor, in case the path was swapped in between). The
// caller closes the returned file.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, nil, err
	}
	if !linkInfo.Mode().IsRegular() {
		return nil, nil, ErrNotRegularFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotRegularFile
	}

	return f, info, nil
}
