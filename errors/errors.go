package errors

import "fmt"

// IOError extends the standard error interface with a kind and a message.
//
// IOError values are immutable: every helper in this package that appears
// to modify one returns a new value instead.
type IOError interface {
	error

	// Kind returns the category of the failure.
	Kind() ErrorKind

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}

// ioError is the concrete implementation of IOError.
// It is private to enforce construction through package functions.
type ioError struct {
	kind    ErrorKind
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[KIND] message" or "[KIND] message: cause" if cause is present.
func (e *ioError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.kind, e.message)
}

func (e *ioError) Kind() ErrorKind {
	return e.kind
}

func (e *ioError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none is attached.
func (e *ioError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func (e *ioError) Unwrap() error {
	return e.cause
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
