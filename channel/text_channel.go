package channel

import (
	"golang.org/x/text/encoding"

	ioerrors "github.com/jmgilman/go/chanio/errors"
)

// TextChannel is a CharacterChannel that encodes text and writes the bytes
// to an underlying Channel.
//
// A call to Write encodes the text once and keeps the encoded bytes pending
// until the underlying channel has accepted all of them, so repeated calls
// with the same text resume where the last one stopped. TextChannel is not
// safe for concurrent use.
type TextChannel struct {
	ch       Channel
	name     string
	enc      *encoding.Encoder
	source   string
	pending  []byte
	position int
}

// NewTextChannel returns a TextChannel writing to ch in the named encoding.
// It fails with a KindGeneric error if the encoding is not supported.
func NewTextChannel(ch Channel, encodingName string) (*TextChannel, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	tc := &TextChannel{ch: ch, name: encodingName}
	if enc != nil {
		tc.enc = newEncoder(enc)
	}
	return tc, nil
}

// Encoding returns the encoding name given to NewTextChannel.
func (t *TextChannel) Encoding() string {
	return t.name
}

// Write performs a single write of the encoded form of text[offset:] and
// returns the number of encoded bytes the underlying channel accepted.
// When the pending bytes for text are exhausted it returns (0, nil).
func (t *TextChannel) Write(text string, offset int) (int, error) {
	if t.pending == nil || text != t.source {
		if offset < 0 || offset > len(text) {
			return 0, ioerrors.Newf(ioerrors.KindGeneric,
				"text offset %d out of range [0, %d]", offset, len(text))
		}
		encoded, err := t.encode(text[offset:])
		if err != nil {
			return 0, err
		}
		t.source, t.pending, t.position = text, encoded, 0
	}

	if t.position >= len(t.pending) {
		t.Reset()
		return 0, nil
	}

	n, err := t.ch.Write(t.pending, t.position)
	if err != nil {
		// A retry starts over from the beginning of the payload.
		t.Reset()
		return n, err
	}
	if n > 0 {
		t.position += n
	}
	if t.position >= len(t.pending) {
		t.Reset()
	}
	return n, nil
}

// Reset discards any bytes still pending from an earlier Write.
// WriteFullString calls it before writing a payload.
func (t *TextChannel) Reset() {
	t.source, t.pending, t.position = "", nil, 0
}

func (t *TextChannel) encode(text string) ([]byte, error) {
	if t.enc == nil {
		return []byte(text), nil
	}
	encoded, err := t.enc.Bytes([]byte(text))
	if err != nil {
		return nil, ioerrors.Wrapf(err, ioerrors.KindGeneric, "unable to encode payload as %s", t.name)
	}
	return encoded, nil
}

var (
	_ CharacterChannel = (*TextChannel)(nil)
	_ resetter         = (*TextChannel)(nil)
)
