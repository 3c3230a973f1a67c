package core

import (
	"io"
	"io/fs"
)

// FSType identifies the backend behind an FS.
type FSType int

const (
	FSTypeUnknown FSType = iota
	FSTypeLocal
	FSTypeMemory
)

func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is what the opener needs from a filesystem: existence and metadata
// lookups, opening with os.O_* flags, and parent directory creation.
// Permission probes are optional, see AccessFS.
type FS interface {
	ReadFS
	WriteFS
	ManageFS

	// Abs maps name to the absolute path reported in errors.
	Abs(name string) (string, error)

	Type() FSType
}

// ReadFS is the lookup half of FS.
type ReadFS interface {
	// Stat failures are *fs.PathError values.
	Stat(name string) (fs.FileInfo, error)

	ReadFile(name string) ([]byte, error)

	// Exists returns (false, nil) only for a path that is definitely absent.
	// Any other lookup failure is returned as an error.
	Exists(name string) (bool, error)
}

// WriteFS is the mutating half of FS.
type WriteFS interface {
	// OpenFile accepts O_RDONLY, O_WRONLY, O_RDWR, O_CREATE, O_TRUNC and
	// O_APPEND. Flags a backend cannot honor fail with ErrUnsupported.
	// perm applies to created files, before umask.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile creates or truncates name and writes data to it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll is a no-op for an existing directory.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS covers the housekeeping used by tests and fixtures.
type ManageFS interface {
	Remove(name string) error
	Chmod(name string, mode fs.FileMode) error
}

// AccessFS is implemented by filesystems that can ask the host whether the
// current process may read or write a path. Filesystems without it are
// judged by permission bits, see Readable and Writable.
type AccessFS interface {
	// Readable and Writable return (false, nil) for a missing path.
	Readable(name string) (bool, error)
	Writable(name string) (bool, error)
}

// File is an open handle returned by OpenFile. The caller closes it.
type File interface {
	fs.File
	io.Writer

	// Name is the name given to OpenFile.
	Name() string
}

// Truncater is an optional File capability.
type Truncater interface {
	Truncate(size int64) error
}

// Syncer is an optional File capability.
type Syncer interface {
	Sync() error
}
