package channel

import (
	"errors"
	"io"
)

// ErrNotReadable and ErrNotWritable are returned by FileChannel when the
// requested direction was not supplied at construction.
var (
	ErrNotReadable = errors.New("channel: not open for reading")
	ErrNotWritable = errors.New("channel: not open for writing")
)

// FileChannel adapts an io.Reader and/or io.Writer into a Channel.
//
// End of stream is recorded the first time the reader returns io.EOF; the
// EOF itself is not reported as an error.
type FileChannel struct {
	r      io.Reader
	w      io.Writer
	closer io.Closer
	ended  bool
}

// NewFileChannel returns a channel that reads from and writes to rw.
// Files returned by the opener package satisfy io.ReadWriter.
func NewFileChannel(rw io.ReadWriter) *FileChannel {
	return &FileChannel{r: rw, w: rw, closer: asCloser(rw)}
}

// NewReadChannel returns a read-only channel over r.
func NewReadChannel(r io.Reader) *FileChannel {
	return &FileChannel{r: r, closer: asCloser(r)}
}

// NewWriteChannel returns a write-only channel over w.
func NewWriteChannel(w io.Writer) *FileChannel {
	return &FileChannel{w: w, closer: asCloser(w)}
}

func asCloser(v any) io.Closer {
	c, _ := v.(io.Closer)
	return c
}

// Write writes p[offset:] in a single call to the underlying writer.
func (c *FileChannel) Write(p []byte, offset int) (int, error) {
	if c.w == nil {
		return 0, ErrNotWritable
	}
	if offset < 0 || offset > len(p) {
		return 0, errInvalidCount
	}
	return c.w.Write(p[offset:])
}

// Read performs a single read from the underlying reader.
func (c *FileChannel) Read(p []byte) (int, error) {
	if c.r == nil {
		return 0, ErrNotReadable
	}
	if c.ended {
		return 0, nil
	}
	n, err := c.r.Read(p)
	if errors.Is(err, io.EOF) {
		c.ended = true
		err = nil
	}
	return n, err
}

// HasReachedEnd reports whether the reader has returned io.EOF.
func (c *FileChannel) HasReachedEnd() bool {
	return c.ended
}

// Close closes the value the channel was constructed from, if it
// implements io.Closer. FileChannel never closes anything on its own;
// callers that hand over ownership call Close explicitly.
func (c *FileChannel) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

var _ Channel = (*FileChannel)(nil)
