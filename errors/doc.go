// Package errors provides the closed error taxonomy used by the chanio
// completion and opener routines.
//
// Every classified failure carries one of four kinds and a human-readable
// message. The package stays compatible with the standard library errors
// package (errors.Is, errors.As, errors.Unwrap), so callers can branch on
// the kind without parsing message text.
//
// # Kinds
//
//   - KindGeneric: catch-all I/O fault
//   - KindEndOfStream: a read ran out of data before the request was satisfied
//   - KindFileNotFound: a read-mode open targeted a missing path
//   - KindAccessDenied: the operating system refused an open
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.KindFileNotFound, "file not found: /var/data/in.txt")
//	err := errors.NewEndOfStream()
//
// Wrapping a lower-level failure:
//
//	f, err := fsys.OpenFile(name, flags, perm)
//	if err != nil {
//	    return errors.Wrap(err, errors.KindGeneric, "fail to open file")
//	}
//
// Branching on the kind:
//
//	switch errors.GetKind(err) {
//	case errors.KindEndOfStream:
//	    // stop reading
//	case errors.KindFileNotFound, errors.KindAccessDenied:
//	    // report to the user
//	}
//
// Errors that were never classified report KindGeneric from GetKind.
//
// # Context Metadata
//
// Diagnostics such as the offending path or expected and actual byte counts
// are attached as context and survive JSON serialization:
//
//	err = errors.WithContext(err, "path", abs)
//
// # Runtime Representation
//
// ToJSON flattens any error into an ErrorResponse, the value handed across
// to an embedding runtime. The wrapped cause chain is not included.
package errors
