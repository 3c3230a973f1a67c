package opener

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrNotReadable reports a read-mode open of a path that exists but
	// cannot be read.
	ErrNotReadable = errors.New("file is not readable")

	// ErrNotWritable reports a write-mode open of a path that exists but
	// cannot be written.
	ErrNotWritable = errors.New("file is not writable")
)

// Mode is the symbolic intent of an open.
type Mode int

const (
	// ModeRead opens an existing file for reading.
	ModeRead Mode = iota
	// ModeOverwrite creates the file or replaces its contents.
	ModeOverwrite
	// ModeAppend creates the file or writes after its current contents.
	ModeAppend
)

// String returns the long name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeOverwrite:
		return "overwrite"
	case ModeAppend:
		return "append"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Writes reports whether the mode needs write access.
func (m Mode) Writes() bool {
	return m == ModeOverwrite || m == ModeAppend
}

// ParseMode accepts the short ("r", "w", "a") and long ("read",
// "overwrite", "append") spellings, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "read":
		return ModeRead, nil
	case "w", "overwrite", "write":
		return ModeOverwrite, nil
	case "a", "append":
		return ModeAppend, nil
	default:
		return 0, fmt.Errorf("unknown open mode %q", s)
	}
}

// Option bits of an OptionSet.
const (
	OptRead OptionSet = 1 << iota
	OptCreate
	OptWrite
	OptAppend
	OptTruncate
)

// OptionSet is the set of low-level open options derived from a Mode.
// It is independent of any platform's flag representation; Flags converts
// it for os.OpenFile-style APIs.
type OptionSet uint8

// Has reports whether every option in o is present in s.
func (s OptionSet) Has(o OptionSet) bool {
	return s&o == o
}

// Flags converts the set to os.O_* flags.
func (s OptionSet) Flags() int {
	var flag int
	switch {
	case s.Has(OptRead) && (s.Has(OptWrite) || s.Has(OptAppend)):
		flag = os.O_RDWR
	case s.Has(OptWrite) || s.Has(OptAppend):
		flag = os.O_WRONLY
	default:
		flag = os.O_RDONLY
	}
	if s.Has(OptCreate) {
		flag |= os.O_CREATE
	}
	if s.Has(OptAppend) {
		flag |= os.O_APPEND
	}
	if s.Has(OptTruncate) {
		flag |= os.O_TRUNC
	}
	return flag
}

// String lists the options, e.g. "CREATE|WRITE|TRUNCATE".
func (s OptionSet) String() string {
	names := []struct {
		opt  OptionSet
		name string
	}{
		{OptRead, "READ"},
		{OptCreate, "CREATE"},
		{OptWrite, "WRITE"},
		{OptAppend, "APPEND"},
		{OptTruncate, "TRUNCATE"},
	}

	var parts []string
	for _, n := range names {
		if s.Has(n.opt) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// Probe holds the filesystem facts an open decision depends on.
type Probe struct {
	Exists   bool
	Readable bool
	Writable bool
}

// Resolve computes the options for mode from the probed facts. It is pure
// decision logic:
//
//   - ModeRead: READ. Fails with fs.ErrNotExist if the path is missing and
//     ErrNotReadable if it exists but cannot be read.
//   - ModeAppend: CREATE|APPEND.
//   - ModeOverwrite: CREATE|WRITE|TRUNCATE.
//
// Both write modes fail with ErrNotWritable if the path exists but cannot
// be written. A missing path is fine for them; it will be created.
func Resolve(mode Mode, p Probe) (OptionSet, error) {
	switch mode {
	case ModeRead:
		if !p.Exists {
			return 0, fs.ErrNotExist
		}
		if !p.Readable {
			return 0, ErrNotReadable
		}
		return OptRead, nil
	case ModeOverwrite, ModeAppend:
		if p.Exists && !p.Writable {
			return 0, ErrNotWritable
		}
		if mode == ModeAppend {
			return OptCreate | OptAppend, nil
		}
		return OptCreate | OptWrite | OptTruncate, nil
	default:
		return 0, fmt.Errorf("unknown open mode %d", int(mode))
	}
}
