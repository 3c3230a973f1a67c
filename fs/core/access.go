package core

import (
	"errors"
	"io/fs"
)

const (
	readBits  fs.FileMode = 0o444
	writeBits fs.FileMode = 0o222
)

// Readable reports whether name may be opened for reading.
//
// Filesystems implementing AccessFS answer directly. Others are judged by
// the permission bits returned from Stat: any read bit set counts as
// readable. A missing path is reported as (false, nil).
func Readable(filesystem FS, name string) (bool, error) {
	if afs, ok := filesystem.(AccessFS); ok {
		return afs.Readable(name)
	}
	return modeAllows(filesystem, name, readBits)
}

// Writable reports whether name may be opened for writing.
// It follows the same rules as Readable using the write bits.
func Writable(filesystem FS, name string) (bool, error) {
	if afs, ok := filesystem.(AccessFS); ok {
		return afs.Writable(name)
	}
	return modeAllows(filesystem, name, writeBits)
}

func modeAllows(filesystem FS, name string, bits fs.FileMode) (bool, error) {
	info, err := filesystem.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().Perm()&bits != 0, nil
}
