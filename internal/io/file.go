package ioutils

import (
	"fmt"
	"os"
)

// DirResult reports what EnsureDir found or did.
type DirResult int

const (
	// DirCreated means the directory did not exist and was created.
	DirCreated DirResult = iota

	// DirExisted means the directory was already present. Callers treat
	// this as "cached state is reusable", not as an error.
	DirExisted
)

// EnsureDir creates a directory (and parents) if needed and reports
// whether it was created or already present. A path occupied by a
// non-directory is an error.
func EnsureDir(path string) (DirResult, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return DirExisted, nil
	case err == nil:
		return 0, fmt.Errorf("%s exists and is not a directory", path)
	case !os.IsNotExist(err):
		return 0, err
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return 0, err
	}
	return DirCreated, nil
}
