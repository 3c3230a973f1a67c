package opener

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"path"
	"path/filepath"

	"github.com/jmgilman/go/chanio/channel"
	ioerrors "github.com/jmgilman/go/chanio/errors"
	"github.com/jmgilman/go/chanio/fs/billy"
	"github.com/jmgilman/go/chanio/fs/core"
)

// Opener opens file channels on a filesystem according to a Mode.
// An Opener holds no per-call state and is safe for concurrent use if its
// filesystem is.
type Opener struct {
	fsys     core.FS
	logger   *slog.Logger
	filePerm fs.FileMode
	dirPerm  fs.FileMode
}

// New returns an Opener over fsys.
func New(fsys core.FS, opts ...Option) *Opener {
	o := &Opener{
		fsys:     fsys,
		logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		filePerm: DefaultFilePerm,
		dirPerm:  DefaultDirPerm,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open opens name on the local filesystem. Relative names are resolved
// against the working directory.
func Open(name string, mode Mode, opts ...Option) (core.File, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, ioerrors.Wrap(err, ioerrors.KindGeneric, "fail to open file")
	}
	return New(billy.NewLocal(), opts...).Open(abs, mode)
}

// OpenChannel is like Open but returns the file as a channel.
func OpenChannel(name string, mode Mode, opts ...Option) (*channel.FileChannel, error) {
	f, err := Open(name, mode, opts...)
	if err != nil {
		return nil, err
	}
	return channel.NewFileChannel(f), nil
}

// Open resolves mode into open options, validates permissions, creates a
// missing parent directory for the write modes, and opens name.
//
// Failures:
//   - ModeRead on a missing path: KindFileNotFound naming the absolute path.
//   - Existing path lacking the needed permission: *fs.PathError wrapping
//     ErrNotReadable or ErrNotWritable.
//   - The filesystem refusing the open with fs.ErrPermission: KindAccessDenied.
//   - Any other fault, including core.ErrUnsupported: KindGeneric.
//
// The returned file belongs to the caller, who must close it.
func (o *Opener) Open(name string, mode Mode) (core.File, error) {
	abs, err := o.fsys.Abs(name)
	if err != nil {
		return nil, ioerrors.Wrap(err, ioerrors.KindGeneric, "fail to open file")
	}

	probe, err := o.probe(name, mode)
	if err != nil {
		return nil, o.classify(err, abs, mode)
	}

	opts, err := Resolve(mode, probe)
	if err != nil {
		return nil, o.rejectErr(err, abs, mode)
	}
	o.logger.Debug("resolved open options",
		"path", abs, "mode", mode.String(), "options", opts.String(), "exists", probe.Exists)

	if mode.Writes() {
		if err := o.ensureParent(name); err != nil {
			return nil, o.classify(err, abs, mode)
		}
	}

	f, err := o.fsys.OpenFile(name, opts.Flags(), o.filePerm)
	if err != nil {
		return nil, o.classify(err, abs, mode)
	}
	return f, nil
}

// OpenChannel is like Open but returns the file as a channel.
func (o *Opener) OpenChannel(name string, mode Mode) (*channel.FileChannel, error) {
	f, err := o.Open(name, mode)
	if err != nil {
		return nil, err
	}
	return channel.NewFileChannel(f), nil
}

// probe collects the facts Resolve needs. Only the probes relevant to mode
// are performed. A read target whose existence cannot be checked for lack
// of permission is reported as missing.
func (o *Opener) probe(name string, mode Mode) (Probe, error) {
	var p Probe

	exists, err := o.fsys.Exists(name)
	if err != nil {
		if mode == ModeRead && errors.Is(err, fs.ErrPermission) {
			o.logger.Debug("existence check denied, treating as missing", "name", name)
			return p, nil
		}
		return p, err
	}
	p.Exists = exists
	if !exists {
		return p, nil
	}

	if mode.Writes() {
		p.Writable, err = core.Writable(o.fsys, name)
	} else {
		p.Readable, err = core.Readable(o.fsys, name)
	}
	return p, err
}

// ensureParent creates the parent directory of name when it is missing.
func (o *Opener) ensureParent(name string) error {
	dir := path.Dir(filepath.ToSlash(name))
	if dir == "." || dir == "/" {
		return nil
	}

	exists, err := o.fsys.Exists(dir)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	o.logger.Debug("creating parent directory", "dir", dir)
	return o.fsys.MkdirAll(dir, o.dirPerm)
}

// rejectErr converts a Resolve failure into the error returned to the caller.
func (o *Opener) rejectErr(err error, abs string, mode Mode) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ioerrors.WithContextMap(
			ioerrors.Newf(ioerrors.KindFileNotFound, "file not found: %s", abs),
			map[string]interface{}{"path": abs, "mode": mode.String()},
		)
	case errors.Is(err, ErrNotReadable), errors.Is(err, ErrNotWritable):
		return &fs.PathError{Op: "open", Path: abs, Err: err}
	default:
		return o.classify(err, abs, mode)
	}
}

// classify maps a filesystem failure onto the error taxonomy.
func (o *Opener) classify(err error, abs string, mode Mode) error {
	ctx := map[string]interface{}{"path": abs, "mode": mode.String()}
	if errors.Is(err, fs.ErrPermission) {
		return ioerrors.WrapWithContext(err, ioerrors.KindAccessDenied, "access denied: "+abs, ctx)
	}
	return ioerrors.WrapWithContext(err, ioerrors.KindGeneric, "fail to open file: "+abs, ctx)
}
