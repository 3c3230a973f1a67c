package errors

import "fmt"

// EndOfStreamMessage is the fixed message carried by NewEndOfStream.
const EndOfStreamMessage = "EoF when reading from the channel"

// New creates a new IOError with the given kind and message.
// Unknown kinds are recorded as KindGeneric.
//
// Example:
//
//	err := errors.New(errors.KindAccessDenied, "access denied: /etc/shadow")
func New(kind ErrorKind, message string) IOError {
	return &ioError{
		kind:    normalize(kind),
		message: message,
	}
}

// Newf creates a new IOError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.KindFileNotFound, "file not found: %s", abs)
func Newf(kind ErrorKind, format string, args ...interface{}) IOError {
	return New(kind, fmt.Sprintf(format, args...))
}

// NewEndOfStream returns the error raised when a channel reaches its end
// before a read request has been filled.
func NewEndOfStream() IOError {
	return New(KindEndOfStream, EndOfStreamMessage)
}
