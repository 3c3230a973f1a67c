// Package fstest provides a conformance suite for filesystem providers used
// by the opener.
//
// The suite checks the contracts the opener depends on: existence and
// permission probes, the open flags produced by opener.Resolve, parent
// directory creation, and the completion channels layered over opened files.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/chanio/fs/core"
)

// FSTestConfig describes provider behavior the suite adapts to.
type FSTestConfig struct {
	// EnforcesPermissions indicates the access probes report read-only and
	// write-only files as such. It is false for local filesystems when the
	// tests run as root, since the operating system grants root everything.
	EnforcesPermissions bool

	// SkipTests lists test groups to skip, e.g. "Channels".
	SkipTests []string
}

// DefaultTestConfig returns the configuration for providers that honor
// permission bits.
func DefaultTestConfig() FSTestConfig {
	return FSTestConfig{EnforcesPermissions: true}
}

// TestSuite runs every conformance group with DefaultTestConfig.
// newFS must return a fresh, empty filesystem on each call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, DefaultTestConfig())
}

// TestSuiteWithConfig runs every conformance group with config.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	shouldSkip := func(name string) bool {
		for _, skip := range config.SkipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"AccessProbes", TestAccessProbesWithConfig},
		{"OpenFileFlags", TestOpenFileFlagsWithConfig},
		{"Opener", TestOpenerWithConfig},
		{"Channels", TestChannelsWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			g.run(t, newFS(), config)
		})
	}
}

// writeFixture creates name with content and perm, failing the test on error.
func writeFixture(t *testing.T, filesystem core.FS, name, content string, perm fs.FileMode) {
	t.Helper()
	if err := filesystem.WriteFile(name, []byte(content), perm); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
}

// readFixture returns the contents of name, failing the test on error.
func readFixture(t *testing.T, filesystem core.FS, name string) string {
	t.Helper()
	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	return string(data)
}
