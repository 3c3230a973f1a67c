package core

import (
	"errors"
	"io/fs"
)

// Sentinels shared by backends. All but ErrUnsupported alias io/fs, so
// errors.Is works against either name.
var (
	ErrNotExist   = fs.ErrNotExist
	ErrExist      = fs.ErrExist
	ErrPermission = fs.ErrPermission
	ErrClosed     = fs.ErrClosed

	// ErrUnsupported reports an operation or open flag the backend cannot
	// honor.
	ErrUnsupported = errors.New("operation not supported")
)
