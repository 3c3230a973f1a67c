package billy

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/chanio/fs/core"
)

// File wraps billy.File to implement core.File.
//
// It stores the name given to OpenFile, since billy backends report names in
// different formats, and it tracks its own closed state so that every
// backend reports fs.ErrClosed after Close.
type File struct {
	file   billy.File
	fs     billy.Basic
	name   string
	closed bool
}

func newFile(f billy.File, bfs billy.Basic, name string) *File {
	return &File{file: f, fs: bfs, name: name}
}

func (f *File) closedErr(op string) error {
	return &fs.PathError{Op: op, Path: f.name, Err: fs.ErrClosed}
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, f.closedErr("read")
	}
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, f.closedErr("write")
	}
	return f.file.Write(p)
}

// Close closes the underlying billy.File. Closing twice returns fs.ErrClosed.
func (f *File) Close() error {
	if f.closed {
		return f.closedErr("close")
	}
	f.closed = true
	return f.file.Close()
}

// Stat returns the file's metadata through the owning filesystem,
// since billy.File has no Stat of its own.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, f.closedErr("seek")
	}
	return f.file.Seek(offset, whence)
}

// Truncate implements core.Truncater.
func (f *File) Truncate(size int64) error {
	if f.closed {
		return f.closedErr("truncate")
	}
	return f.file.Truncate(size)
}

// Sync implements core.Syncer. Backends without Sync (memfs) treat it as a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File      = (*File)(nil)
	_ io.Seeker      = (*File)(nil)
	_ core.Truncater = (*File)(nil)
	_ core.Syncer    = (*File)(nil)
)
