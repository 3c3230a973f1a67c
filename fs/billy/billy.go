package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/chanio/fs/core"
)

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	root string
}

// WithRoot roots the filesystem at dir. Every name, absolute or relative,
// is resolved beneath it. The default root is "/".
func WithRoot(dir string) Option {
	return func(c *config) {
		c.root = dir
	}
}

func newConfig(opts []Option) *config {
	c := &config{root: "/"}
	for _, opt := range opts {
		opt(c)
	}
	c.root = filepath.Clean(c.root)
	return c
}

// base holds the operations shared by every billy-backed provider.
type base struct {
	bfs  billy.Filesystem
	root string
}

// LocalFS wraps billy's osfs for local filesystem access.
// It also implements core.AccessFS by asking the operating system.
type LocalFS struct {
	base
}

// MemoryFS wraps billy's memfs for in-memory filesystem access.
// Access probes fall back to permission bits.
type MemoryFS struct {
	base
}

// NewLocal creates a go-billy-backed local filesystem.
func NewLocal(opts ...Option) *LocalFS {
	c := newConfig(opts)
	return &LocalFS{base{bfs: osfs.New(c.root), root: c.root}}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(opts ...Option) *MemoryFS {
	c := newConfig(opts)
	return &MemoryFS{base{bfs: memfs.New(), root: c.root}}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *base) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to use forward slashes consistently.
// This is a simplified path normalization since billy handles security.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// Abs returns name joined onto the filesystem root.
func (b *base) Abs(name string) (string, error) {
	return path.Join(filepath.ToSlash(b.root), normalize(name)), nil
}

// Stat returns file metadata for the named file.
func (b *base) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (b *base) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *base) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(normalize(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// OpenFile opens a file with the specified flags and permissions.
func (b *base) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return newFile(f, b.bfs, name), nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *base) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(b.bfs, normalize(name), data, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (b *base) MkdirAll(name string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(name), perm)
}

// Remove removes the named file or empty directory.
func (b *base) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// Chmod changes the mode of the named file.
// Returns core.ErrUnsupported if the billy backend cannot change modes.
func (b *base) Chmod(name string, mode fs.FileMode) error {
	ch, ok := b.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	return ch.Chmod(normalize(name), os.FileMode(mode))
}

// Type returns FSTypeLocal for local filesystem implementations.
func (lfs *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Type returns FSTypeMemory for in-memory filesystem implementations.
func (mfs *MemoryFS) Type() core.FSType {
	return core.FSTypeMemory
}

// osPath maps name onto the host path beneath the root.
func (lfs *LocalFS) osPath(name string) string {
	return filepath.Join(lfs.root, filepath.FromSlash(normalize(name)))
}

// Compile-time interface checks.
var (
	_ core.FS       = (*LocalFS)(nil)
	_ core.FS       = (*MemoryFS)(nil)
	_ core.AccessFS = (*LocalFS)(nil)
)
