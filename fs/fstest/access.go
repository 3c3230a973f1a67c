package fstest

import (
	"testing"

	"github.com/jmgilman/go/chanio/fs/core"
)

// TestAccessProbes checks core.Readable and core.Writable.
func TestAccessProbes(t *testing.T, filesystem core.FS) {
	TestAccessProbesWithConfig(t, filesystem, DefaultTestConfig())
}

// TestAccessProbesWithConfig checks core.Readable and core.Writable with
// the given configuration.
func TestAccessProbesWithConfig(t *testing.T, filesystem core.FS, config FSTestConfig) {
	t.Run("ReadWriteFile", func(t *testing.T) {
		writeFixture(t, filesystem, "/rw.txt", "data", 0o644)
		assertProbe(t, "Readable", core.Readable, filesystem, "/rw.txt", true)
		assertProbe(t, "Writable", core.Writable, filesystem, "/rw.txt", true)
	})

	t.Run("MissingFile", func(t *testing.T) {
		assertProbe(t, "Readable", core.Readable, filesystem, "/missing.txt", false)
		assertProbe(t, "Writable", core.Writable, filesystem, "/missing.txt", false)
	})

	t.Run("ReadOnlyFile", func(t *testing.T) {
		if !config.EnforcesPermissions {
			t.Skip("provider does not enforce permissions")
		}
		writeFixture(t, filesystem, "/ro.txt", "data", 0o444)
		assertProbe(t, "Readable", core.Readable, filesystem, "/ro.txt", true)
		assertProbe(t, "Writable", core.Writable, filesystem, "/ro.txt", false)
	})

	t.Run("WriteOnlyFile", func(t *testing.T) {
		if !config.EnforcesPermissions {
			t.Skip("provider does not enforce permissions")
		}
		writeFixture(t, filesystem, "/wo.txt", "data", 0o200)
		assertProbe(t, "Readable", core.Readable, filesystem, "/wo.txt", false)
		assertProbe(t, "Writable", core.Writable, filesystem, "/wo.txt", true)
	})
}

func assertProbe(t *testing.T, label string, probe func(core.FS, string) (bool, error),
	filesystem core.FS, name string, want bool) {
	t.Helper()
	got, err := probe(filesystem, name)
	if err != nil {
		t.Errorf("%s(%q): got error %v, want nil", label, name, err)
		return
	}
	if got != want {
		t.Errorf("%s(%q): got %v, want %v", label, name, got, want)
	}
}
