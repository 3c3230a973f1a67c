// Package billy provides go-billy-backed implementations of core.FS.
//
// LocalFS wraps osfs and answers access probes by asking the operating
// system (access(2) on Unix). MemoryFS wraps memfs and is meant for tests
// and scratch storage; its access probes use permission bits.
//
// Usage:
//
//	fsys := billy.NewLocal()
//	f, err := fsys.OpenFile("/var/log/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
//
//	// Scoped to a directory, as tests do with t.TempDir()
//	fsys := billy.NewLocal(billy.WithRoot(dir))
//
//	mem := billy.NewMemory()
//	err := mem.WriteFile("in.txt", []byte("data"), 0o644)
//
// # Thread Safety
//
// Filesystem values are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
