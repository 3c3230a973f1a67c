package channel

import (
	"errors"
	"fmt"
	"io/fs"

	ioerrors "github.com/jmgilman/go/chanio/errors"
)

// ErrChannelClosed is returned by WriteFullString when the channel was
// closed before the payload was fully written.
var ErrChannelClosed = errors.New("channel already closed")

// PartialWriteError reports a character write that stopped making progress
// before the whole encoded payload was written.
type PartialWriteError struct {
	// Expected is the byte length of the encoded payload.
	Expected int
	// Actual is the number of bytes the channel accepted.
	Actual int
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write occurred: expected %d bytes, wrote %d bytes", e.Expected, e.Actual)
}

// CharacterChannel is a text-oriented channel capability.
type CharacterChannel interface {
	// Write performs a single write of text starting at offset and reports
	// how many encoded bytes were accepted. The channel tracks its own
	// cursor, so repeated calls with the same text continue where the
	// previous call stopped.
	Write(text string, offset int) (int, error)

	// Encoding returns the name of the encoding the channel writes.
	Encoding() string
}

// resetter is implemented by character channels that buffer a payload
// across calls.
type resetter interface {
	Reset()
}

// WriteFullString writes payload to ch until the full encoded length has
// been accepted and returns that length.
//
// Completion is measured in bytes of payload encoded with ch.Encoding(),
// because multi-byte encodings make character counts unreliable. A single
// write that makes no progress ends the loop; the call then fails with a
// *PartialWriteError carrying the expected and actual counts. A closed
// channel fails with ErrChannelClosed; any other fault is a KindGeneric
// error wrapping the cause.
//
// Channels implementing Reset() are reset first, so bytes left over from an
// earlier call are never counted toward payload.
func WriteFullString(ch CharacterChannel, payload string) (int, error) {
	target, err := EncodedLength(payload, ch.Encoding())
	if err != nil {
		return 0, err
	}

	if r, ok := ch.(resetter); ok {
		r.Reset()
	}

	total, n := 0, -1
	for total < target && n != 0 {
		n, err = ch.Write(payload, 0)
		if err != nil {
			if errors.Is(err, fs.ErrClosed) || errors.Is(err, ErrChannelClosed) {
				return total, fmt.Errorf("%w: %w", ErrChannelClosed, err)
			}
			return total, ioerrors.Wrap(err, ioerrors.KindGeneric, "unable to write content fully")
		}
		if n < 0 {
			return total, errInvalidCount
		}
		total += n
	}

	if total != target {
		return total, &PartialWriteError{Expected: target, Actual: total}
	}
	return total, nil
}
