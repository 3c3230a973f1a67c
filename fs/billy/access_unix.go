//go:build unix

package billy

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Readable reports whether the process may open name for reading.
func (lfs *LocalFS) Readable(name string) (bool, error) {
	return lfs.access(name, unix.R_OK)
}

// Writable reports whether the process may open name for writing.
func (lfs *LocalFS) Writable(name string) (bool, error) {
	return lfs.access(name, unix.W_OK)
}

// access maps EACCES, EROFS and ENOENT to false and surfaces anything else.
func (lfs *LocalFS) access(name string, mode uint32) (bool, error) {
	err := unix.Access(lfs.osPath(name), mode)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EROFS), errors.Is(err, unix.ENOENT):
		return false, nil
	default:
		return false, err
	}
}
