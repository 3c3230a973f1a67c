// Package core defines the filesystem contract used by the file channel
// opener and implemented by the providers in sibling packages.
//
// The package only uses the standard library. It holds interfaces, the
// sentinel errors providers report, and the permission probe helpers
// Readable and Writable.
//
// # Interface Hierarchy
//
// The FS interface is composed of three sub-interfaces:
//
//   - ReadFS: Stat, ReadFile, Exists
//   - WriteFS: OpenFile, WriteFile, MkdirAll
//   - ManageFS: Remove, Chmod
//
// AccessFS is optional. Providers that can ask the operating system whether
// a path is readable or writable implement it; for the rest, Readable and
// Writable fall back to permission bits.
//
// # Usage Example
//
//	func appendLine(filesystem core.FS, name, line string) error {
//	    ok, err := core.Writable(filesystem, name)
//	    if err != nil {
//	        return err
//	    }
//	    if !ok {
//	        return fmt.Errorf("%s is not writable", name)
//	    }
//	    f, err := filesystem.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
//	    if err != nil {
//	        return err
//	    }
//	    defer f.Close()
//	    _, err = io.WriteString(f, line)
//	    return err
//	}
//
// # Provider Implementations
//
//   - github.com/jmgilman/go/chanio/fs/billy - go-billy-backed local and memory providers
package core
