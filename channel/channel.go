package channel

import (
	"errors"
	"io"

	ioerrors "github.com/jmgilman/go/chanio/errors"
)

// maxConsecutiveEmpty bounds how many zero-progress calls without an error
// a completion loop tolerates before giving up with io.ErrNoProgress.
const maxConsecutiveEmpty = 100

var errInvalidCount = errors.New("channel: invalid transfer count")

// Channel is a byte-oriented channel capability.
type Channel interface {
	// Write performs a single write of p[offset:] and reports how many
	// bytes were accepted.
	Write(p []byte, offset int) (int, error)

	// Read performs a single read into p and reports how many bytes were
	// produced.
	Read(p []byte) (int, error)

	// HasReachedEnd reports whether the readable side has no more bytes.
	HasReachedEnd() bool
}

// WriteFull writes p[offset:] to ch, repeating single writes until every
// byte has been accepted. It returns the number of bytes written, which on
// success is len(p)-offset.
//
// Errors raised by ch are returned unchanged together with the count
// written so far.
func WriteFull(ch Channel, p []byte, offset int) (int, error) {
	if offset < 0 || offset > len(p) {
		return 0, ioerrors.Newf(ioerrors.KindGeneric,
			"write offset %d out of range [0, %d]", offset, len(p))
	}

	written, empty := 0, 0
	for off := offset; off < len(p); {
		n, err := ch.Write(p, off)
		if n < 0 || n > len(p)-off {
			return written, errInvalidCount
		}
		off += n
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			empty++
			if empty >= maxConsecutiveEmpty {
				return written, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return written, nil
}

// ReadFull reads from ch until p is full.
//
// Before every read it consults ch.HasReachedEnd; if the channel has ended
// the call fails with an EndOfStream error, so a short read at the end of the
// stream is a failure rather than a short count. A zero-length p returns
// (0, nil) without touching the channel.
//
// Errors raised by ch are returned unchanged, except io.EOF which is treated
// as the channel reaching its end.
func ReadFull(ch Channel, p []byte) (int, error) {
	total, empty := 0, 0
	for total < len(p) {
		if ch.HasReachedEnd() {
			return total, ioerrors.NewEndOfStream()
		}

		n, err := ch.Read(p[total:])
		if n < 0 || n > len(p)-total {
			return total, errInvalidCount
		}
		total += n

		if errors.Is(err, io.EOF) {
			if total == len(p) {
				return total, nil
			}
			return total, ioerrors.NewEndOfStream()
		}
		if err != nil {
			return total, err
		}

		if n == 0 {
			empty++
			if empty >= maxConsecutiveEmpty {
				return total, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}
	return total, nil
}
