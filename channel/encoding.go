package channel

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	ioerrors "github.com/jmgilman/go/chanio/errors"
)

// EncodedLength returns the number of bytes payload occupies when encoded
// with the named encoding.
//
// An empty name or any spelling of UTF-8 measures the payload as is. Other
// names are resolved through the IANA registry. Characters the encoding
// cannot represent are counted as the encoding's replacement byte, which is
// what TextChannel writes for them.
func EncodedLength(payload, name string) (int, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return 0, err
	}
	if enc == nil {
		return len(payload), nil
	}

	encoded, err := newEncoder(enc).String(payload)
	if err != nil {
		return 0, ioerrors.Wrapf(err, ioerrors.KindGeneric, "unable to encode payload as %s", name)
	}
	return len(encoded), nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}

// lookupEncoding returns nil for UTF-8, which is written without transcoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if isUTF8(name) {
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, ioerrors.Wrapf(err, ioerrors.KindGeneric, "unsupported encoding: %s", name)
	}
	if enc == nil {
		return nil, ioerrors.Newf(ioerrors.KindGeneric, "unsupported encoding: %s", name)
	}
	return enc, nil
}

func newEncoder(enc encoding.Encoding) *encoding.Encoder {
	return encoding.ReplaceUnsupported(enc.NewEncoder())
}
