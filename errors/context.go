package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new IOError with the context field added.
// Existing context fields are preserved.
//
// If err is not an IOError, it is converted to one with KindGeneric.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.KindAccessDenied, "access denied")
//	err = errors.WithContext(err, "path", "/var/log/app.log")
func WithContext(err error, key string, value interface{}) IOError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing context fields are preserved; new fields override existing ones
// with the same key.
//
// If err is not an IOError, it is converted to one with KindGeneric.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) IOError {
	if err == nil {
		return nil
	}

	var ioErr IOError
	if !errors.As(err, &ioErr) {
		ioErr = &ioError{
			kind:    KindGeneric,
			message: err.Error(),
			cause:   err,
		}
	}

	merged := make(map[string]interface{})
	for k, v := range ioErr.Context() {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &ioError{
		kind:    ioErr.Kind(),
		message: ioErr.Message(),
		context: merged,
		cause:   ioErr.Unwrap(),
	}
}
