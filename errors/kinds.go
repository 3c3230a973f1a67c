package errors

// ErrorKind identifies the category of an I/O failure.
// Kinds are string-based for debuggability and natural JSON serialization.
type ErrorKind string

const (
	// KindGeneric indicates a catch-all I/O fault.
	KindGeneric ErrorKind = "GENERIC"

	// KindEndOfStream indicates a read was exhausted before satisfying the request.
	KindEndOfStream ErrorKind = "END_OF_STREAM"

	// KindFileNotFound indicates a read-mode open against a path that does not exist.
	KindFileNotFound ErrorKind = "FILE_NOT_FOUND"

	// KindAccessDenied indicates the operating system refused the operation.
	KindAccessDenied ErrorKind = "ACCESS_DENIED"
)

// Kinds returns every defined kind in declaration order.
func Kinds() []ErrorKind {
	return []ErrorKind{KindGeneric, KindEndOfStream, KindFileNotFound, KindAccessDenied}
}

// Valid reports whether k is one of the defined kinds.
func (k ErrorKind) Valid() bool {
	switch k {
	case KindGeneric, KindEndOfStream, KindFileNotFound, KindAccessDenied:
		return true
	default:
		return false
	}
}

// String returns the kind's identifier.
func (k ErrorKind) String() string {
	return string(k)
}

// normalize maps unknown kinds to KindGeneric so the taxonomy stays closed.
func normalize(k ErrorKind) ErrorKind {
	if k.Valid() {
		return k
	}
	return KindGeneric
}
