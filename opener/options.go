package opener

import (
	"io/fs"
	"log/slog"
)

const (
	// DefaultFilePerm is the mode used for files the opener creates (before umask).
	DefaultFilePerm fs.FileMode = 0o666
	// DefaultDirPerm is the mode used for parent directories the opener creates.
	DefaultDirPerm fs.FileMode = 0o755
)

// Option configures an Opener.
type Option func(*Opener)

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Opener) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFilePerm sets the permission bits for created files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(o *Opener) {
		o.filePerm = perm
	}
}

// WithDirPerm sets the permission bits for created parent directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(o *Opener) {
		o.dirPerm = perm
	}
}
