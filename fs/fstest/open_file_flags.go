package fstest

import (
	"io"
	"testing"

	"github.com/jmgilman/go/chanio/fs/core"
	"github.com/jmgilman/go/chanio/opener"
)

// TestOpenFileFlags checks that OpenFile honors the flag combinations
// produced by opener.Resolve.
func TestOpenFileFlags(t *testing.T, filesystem core.FS) {
	TestOpenFileFlagsWithConfig(t, filesystem, DefaultTestConfig())
}

// TestOpenFileFlagsWithConfig is TestOpenFileFlags with a configuration.
func TestOpenFileFlagsWithConfig(t *testing.T, filesystem core.FS, _ FSTestConfig) {
	t.Run("Read", func(t *testing.T) {
		writeFixture(t, filesystem, "/flags-read.txt", "content", 0o644)

		f, err := filesystem.OpenFile("/flags-read.txt", opener.OptRead.Flags(), 0)
		if err != nil {
			t.Fatalf("OpenFile(READ): got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll(): got error %v, want nil", err)
		}
		if string(data) != "content" {
			t.Errorf("ReadAll(): got %q, want %q", data, "content")
		}
	})

	t.Run("CreateWriteTruncate", func(t *testing.T) {
		flags := (opener.OptCreate | opener.OptWrite | opener.OptTruncate).Flags()

		writeFixture(t, filesystem, "/flags-trunc.txt", "old content", 0o644)
		writeThrough(t, filesystem, "/flags-trunc.txt", flags, "new")
		if got := readFixture(t, filesystem, "/flags-trunc.txt"); got != "new" {
			t.Errorf("after truncate: got %q, want %q", got, "new")
		}

		writeThrough(t, filesystem, "/flags-created.txt", flags, "fresh")
		if got := readFixture(t, filesystem, "/flags-created.txt"); got != "fresh" {
			t.Errorf("after create: got %q, want %q", got, "fresh")
		}
	})

	t.Run("CreateAppend", func(t *testing.T) {
		flags := (opener.OptCreate | opener.OptAppend).Flags()

		writeFixture(t, filesystem, "/flags-append.txt", "a", 0o644)
		writeThrough(t, filesystem, "/flags-append.txt", flags, "b")
		writeThrough(t, filesystem, "/flags-append.txt", flags, "c")
		if got := readFixture(t, filesystem, "/flags-append.txt"); got != "abc" {
			t.Errorf("after append: got %q, want %q", got, "abc")
		}
	})
}

func writeThrough(t *testing.T, filesystem core.FS, name string, flags int, content string) {
	t.Helper()
	f, err := filesystem.OpenFile(name, flags, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, %#o): got error %v, want nil", name, flags, err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		t.Errorf("Write(%q): got error %v, want nil", name, err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close(%q): got error %v, want nil", name, err)
	}
}
