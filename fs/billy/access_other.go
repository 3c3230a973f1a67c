//go:build !unix

package billy

import (
	"errors"
	"io/fs"
)

// Readable reports whether name carries a read permission bit.
func (lfs *LocalFS) Readable(name string) (bool, error) {
	return lfs.modeAllows(name, 0o444)
}

// Writable reports whether name carries a write permission bit.
func (lfs *LocalFS) Writable(name string) (bool, error) {
	return lfs.modeAllows(name, 0o222)
}

func (lfs *LocalFS) modeAllows(name string, bits fs.FileMode) (bool, error) {
	info, err := lfs.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().Perm()&bits != 0, nil
}
