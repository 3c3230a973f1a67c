package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the ErrorKind from an error.
//
// The outermost IOError in the chain decides the kind. Errors that carry
// no IOError, including nil, report KindGeneric.
//
// Example:
//
//	if errors.GetKind(err) == errors.KindEndOfStream {
//	    // Handle end of stream
//	}
func GetKind(err error) ErrorKind {
	if err == nil {
		return KindGeneric
	}

	var ioErr IOError
	if stderrors.As(err, &ioErr) {
		return ioErr.Kind()
	}

	return KindGeneric
}

// IsKind reports whether err carries an IOError of the given kind.
// Unlike GetKind, unclassified errors never match.
func IsKind(err error, kind ErrorKind) bool {
	var ioErr IOError
	if !stderrors.As(err, &ioErr) {
		return false
	}
	return ioErr.Kind() == kind
}

// IsEndOfStream reports whether err is an end-of-stream failure.
func IsEndOfStream(err error) bool {
	return IsKind(err, KindEndOfStream)
}

// IsFileNotFound reports whether err is a file-not-found failure.
func IsFileNotFound(err error) bool {
	return IsKind(err, KindFileNotFound)
}

// IsAccessDenied reports whether err is an access-denied failure.
func IsAccessDenied(err error) bool {
	return IsKind(err, KindAccessDenied)
}
