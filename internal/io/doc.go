// Package ioutils provides file system utilities for the dataset cache.
//
// This package contains functions for:
//   - Directory creation with an explicit created/existed result
//   - Archive detection and zip expansion
//
// EnsureDir distinguishes DirCreated from DirExisted so callers can treat
// pre-existing cache directories as reusable state rather than suppressing
// errors wholesale.
package ioutils
