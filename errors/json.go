package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat representation of an error handed to an
// embedding runtime. The wrapped cause chain is intentionally excluded.
type ErrorResponse struct {
	// Kind is the error kind.
	Kind string `json:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For IOError instances, extracts kind, message, and context.
// For other errors, uses KindGeneric and the error's message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var ioErr IOError
	if As(err, &ioErr) {
		message = ioErr.Message()
		context = ioErr.Context()
	}

	return &ErrorResponse{
		Kind:    string(GetKind(err)),
		Message: message,
		Context: context,
	}
}

// MarshalJSON implements json.Marshaler for ioError.
//
// Example:
//
//	err := errors.NewEndOfStream()
//	data, _ := json.Marshal(err)
//	// {"kind":"END_OF_STREAM","message":"EoF when reading from the channel"}
func (e *ioError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Kind:    string(e.kind),
		Message: e.message,
		Context: e.context,
	})
	if err != nil {
		return nil, &ioError{
			kind:    KindGeneric,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
