package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a kind and message while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err != nil {
//	    return errors.Wrap(err, errors.KindGeneric, "fail to open file")
//	}
func Wrap(err error, kind ErrorKind, message string) IOError {
	if err == nil {
		return nil
	}

	return &ioError{
		kind:    normalize(kind),
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, kind ErrorKind, format string, args ...interface{}) IOError {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
func WrapWithContext(err error, kind ErrorKind, message string, ctx map[string]interface{}) IOError {
	if err == nil {
		return nil
	}

	return &ioError{
		kind:    normalize(kind),
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}

// FromError converts an arbitrary failure into a classified error.
// If err already carries an IOError in its chain, that error is returned.
// Otherwise the error's message becomes the message of a KindGeneric error
// that wraps it.
//
// Returns nil if err is nil.
func FromError(err error) IOError {
	if err == nil {
		return nil
	}

	var ioErr IOError
	if errors.As(err, &ioErr) {
		return ioErr
	}

	return &ioError{
		kind:    KindGeneric,
		message: err.Error(),
		cause:   err,
	}
}
