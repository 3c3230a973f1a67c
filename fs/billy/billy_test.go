package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/chanio/fs/core"
)

// TestConstructors verifies the constructors wire a billy filesystem.
func TestConstructors(t *testing.T) {
	if NewLocal().Unwrap() == nil {
		t.Error("NewLocal() has nil billy filesystem")
	}
	if NewMemory().Unwrap() == nil {
		t.Error("NewMemory() has nil billy filesystem")
	}
}

// TestType verifies each provider reports its FSType.
func TestType(t *testing.T) {
	if got := NewLocal().Type(); got != core.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %v, want %v", got, core.FSTypeLocal)
	}
	if got := NewMemory().Type(); got != core.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %v, want %v", got, core.FSTypeMemory)
	}
}

// TestAbs verifies names resolve beneath the configured root.
func TestAbs(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
		want string
	}{
		{"default root relative", "", "a/b.txt", "/a/b.txt"},
		{"default root absolute", "", "/a/b.txt", "/a/b.txt"},
		{"custom root", "/srv/data", "logs/app.log", "/srv/data/logs/app.log"},
		{"dot segments", "/srv", "x/../y.txt", "/srv/y.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.root != "" {
				opts = append(opts, WithRoot(tt.root))
			}
			got, err := NewMemory(opts...).Abs(tt.path)
			if err != nil {
				t.Fatalf("Abs(%q): unexpected error %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Abs(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestMemoryFS_ReadWrite verifies WriteFile, ReadFile, Exists and Remove.
func TestMemoryFS_ReadWrite(t *testing.T) {
	mfs := NewMemory()

	if err := mfs.WriteFile("dir/file.txt", []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := mfs.ReadFile("dir/file.txt")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile = %q, want %q", data, "hello")
	}

	exists, err := mfs.Exists("dir/file.txt")
	if err != nil || !exists {
		t.Errorf("Exists = (%v, %v), want (true, nil)", exists, err)
	}

	if err := mfs.Remove("dir/file.txt"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	exists, err = mfs.Exists("dir/file.txt")
	if err != nil || exists {
		t.Errorf("Exists after Remove = (%v, %v), want (false, nil)", exists, err)
	}
}

// TestMemoryFS_Chmod verifies mode changes are visible to the permission-bit probes.
func TestMemoryFS_Chmod(t *testing.T) {
	mfs := NewMemory()
	if err := mfs.WriteFile("ro.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := mfs.Chmod("ro.txt", 0o444); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	writable, err := core.Writable(mfs, "ro.txt")
	if err != nil {
		t.Fatalf("Writable: %v", err)
	}
	if writable {
		t.Error("Writable() = true after chmod 0444, want false")
	}

	readable, err := core.Readable(mfs, "ro.txt")
	if err != nil {
		t.Fatalf("Readable: %v", err)
	}
	if !readable {
		t.Error("Readable() = false after chmod 0444, want true")
	}
}

// TestLocalFS_RootedOperations verifies a rooted LocalFS maps onto the host directory.
func TestLocalFS_RootedOperations(t *testing.T) {
	dir := t.TempDir()
	lfs := NewLocal(WithRoot(dir))

	if err := lfs.MkdirAll("a/b", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := lfs.WriteFile("a/b/c.txt", []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.txt"))
	if err != nil {
		t.Fatalf("host ReadFile: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("host content = %q, want %q", data, "data")
	}

	abs, err := lfs.Abs("a/b/c.txt")
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	if want := filepath.ToSlash(filepath.Join(dir, "a", "b", "c.txt")); abs != want {
		t.Errorf("Abs = %q, want %q", abs, want)
	}
}

// TestLocalFS_Access verifies the operating system probes.
func TestLocalFS_Access(t *testing.T) {
	dir := t.TempDir()
	lfs := NewLocal(WithRoot(dir))
	if err := lfs.WriteFile("f.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	readable, err := lfs.Readable("f.txt")
	if err != nil || !readable {
		t.Errorf("Readable = (%v, %v), want (true, nil)", readable, err)
	}
	writable, err := lfs.Writable("f.txt")
	if err != nil || !writable {
		t.Errorf("Writable = (%v, %v), want (true, nil)", writable, err)
	}

	readable, err = lfs.Readable("missing.txt")
	if err != nil || readable {
		t.Errorf("Readable(missing) = (%v, %v), want (false, nil)", readable, err)
	}
}

// TestFile_ClosedState verifies operations after Close report fs.ErrClosed.
func TestFile_ClosedState(t *testing.T) {
	mfs := NewMemory()
	f, err := mfs.OpenFile("f.txt", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if f.Name() != "f.txt" {
		t.Errorf("Name() = %q, want %q", f.Name(), "f.txt")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := f.Write([]byte("x")); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Write after Close: got %v, want fs.ErrClosed", err)
	}
	if _, err := f.Read(make([]byte, 1)); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Read after Close: got %v, want fs.ErrClosed", err)
	}
	if err := f.Close(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("second Close: got %v, want fs.ErrClosed", err)
	}
}

// TestFile_SeekTruncateStat verifies the optional capabilities delegate to billy.
func TestFile_SeekTruncateStat(t *testing.T) {
	mfs := NewMemory()
	f, err := mfs.OpenFile("f.txt", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	bf := f.(*File)
	if err := bf.Truncate(5); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	if _, err := bf.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	data, err := io.ReadAll(bf)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("content = %q, want %q", data, "hello")
	}

	info, err := bf.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size = %d, want 5", info.Size())
	}
	if err := bf.Sync(); err != nil {
		t.Errorf("Sync: %v", err)
	}
}
