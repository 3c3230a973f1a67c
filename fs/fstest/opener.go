package fstest

import (
	"errors"
	"strings"
	"testing"

	ioerrors "github.com/jmgilman/go/chanio/errors"
	"github.com/jmgilman/go/chanio/fs/core"
	"github.com/jmgilman/go/chanio/opener"
)

// TestOpener checks opener.Opener against the provider.
func TestOpener(t *testing.T, filesystem core.FS) {
	TestOpenerWithConfig(t, filesystem, DefaultTestConfig())
}

// TestOpenerWithConfig checks opener.Opener against the provider with the
// given configuration.
func TestOpenerWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	o := opener.New(filesystem)

	t.Run("ReadMissing", func(t *testing.T) {
		_, err := o.Open("/does/not/exist.txt", opener.ModeRead)
		if !ioerrors.IsFileNotFound(err) {
			t.Fatalf("Open(missing, read): got %v, want FILE_NOT_FOUND", err)
		}
		abs, _ := filesystem.Abs("/does/not/exist.txt")
		if msg := err.Error(); !strings.Contains(msg, abs) {
			t.Errorf("Open(missing, read): message %q does not name %q", msg, abs)
		}
		if ok, _ := filesystem.Exists("/does"); ok {
			t.Errorf("Open(missing, read): created parent directory")
		}
	})

	t.Run("OverwriteCreatesParents", func(t *testing.T) {
		writeWith(t, o, "/new/dir/tree/out.txt", opener.ModeOverwrite, "created")
		if got := readFixture(t, filesystem, "/new/dir/tree/out.txt"); got != "created" {
			t.Errorf("contents: got %q, want %q", got, "created")
		}
		if ok, _ := filesystem.Exists("/new/dir"); !ok {
			t.Errorf("Exists(new/dir): got false, want true")
		}
	})

	t.Run("OverwriteTruncates", func(t *testing.T) {
		writeFixture(t, filesystem, "/trunc.txt", "a much longer previous body", 0o644)
		writeWith(t, o, "/trunc.txt", opener.ModeOverwrite, "short")
		if got := readFixture(t, filesystem, "/trunc.txt"); got != "short" {
			t.Errorf("contents: got %q, want %q", got, "short")
		}
	})

	t.Run("AppendPreserves", func(t *testing.T) {
		writeWith(t, o, "/logs/app.log", opener.ModeAppend, "one\n")
		writeWith(t, o, "/logs/app.log", opener.ModeAppend, "two\n")
		if got := readFixture(t, filesystem, "/logs/app.log"); got != "one\ntwo\n" {
			t.Errorf("contents: got %q, want %q", got, "one\ntwo\n")
		}
	})

	t.Run("ReadExisting", func(t *testing.T) {
		writeFixture(t, filesystem, "/in.txt", "input", 0o644)
		f, err := o.Open("/in.txt", opener.ModeRead)
		if err != nil {
			t.Fatalf("Open(in.txt, read): got error %v, want nil", err)
		}
		_ = f.Close()
	})

	t.Run("RejectsReadOnly", func(t *testing.T) {
		if !config.EnforcesPermissions {
			t.Skip("provider does not enforce permissions")
		}
		writeFixture(t, filesystem, "/locked.txt", "keep", 0o444)
		for _, mode := range []opener.Mode{opener.ModeOverwrite, opener.ModeAppend} {
			if _, err := o.Open("/locked.txt", mode); !errors.Is(err, opener.ErrNotWritable) {
				t.Errorf("Open(locked.txt, %s): got %v, want ErrNotWritable", mode, err)
			}
		}
		if got := readFixture(t, filesystem, "/locked.txt"); got != "keep" {
			t.Errorf("contents: got %q, want %q", got, "keep")
		}
	})

	t.Run("RejectsWriteOnly", func(t *testing.T) {
		if !config.EnforcesPermissions {
			t.Skip("provider does not enforce permissions")
		}
		writeFixture(t, filesystem, "/drop.txt", "x", 0o200)
		if _, err := o.Open("/drop.txt", opener.ModeRead); !errors.Is(err, opener.ErrNotReadable) {
			t.Errorf("Open(drop.txt, read): got %v, want ErrNotReadable", err)
		}
	})
}

func writeWith(t *testing.T, o *opener.Opener, name string, mode opener.Mode, content string) {
	t.Helper()
	f, err := o.Open(name, mode)
	if err != nil {
		t.Fatalf("Open(%q, %s): got error %v, want nil", name, mode, err)
	}
	if _, err := f.Write([]byte(content)); err != nil {
		t.Errorf("Write(%q): got error %v, want nil", name, err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close(%q): got error %v, want nil", name, err)
	}
}
