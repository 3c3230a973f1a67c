package fstest

import (
	"strings"
	"testing"

	"github.com/jmgilman/go/chanio/channel"
	ioerrors "github.com/jmgilman/go/chanio/errors"
	"github.com/jmgilman/go/chanio/fs/core"
	"github.com/jmgilman/go/chanio/opener"
)

// TestChannels checks the completion helpers over files opened on the
// provider.
func TestChannels(t *testing.T, filesystem core.FS) {
	TestChannelsWithConfig(t, filesystem, DefaultTestConfig())
}

// TestChannelsWithConfig is TestChannels with a configuration.
func TestChannelsWithConfig(t *testing.T, filesystem core.FS, _ FSTestConfig) {
	o := opener.New(filesystem)

	t.Run("ByteRoundTrip", func(t *testing.T) {
		payload := []byte(strings.Repeat("0123456789", 1000))

		w, err := o.OpenChannel("/chan/bytes.bin", opener.ModeOverwrite)
		if err != nil {
			t.Fatalf("OpenChannel(overwrite): got error %v, want nil", err)
		}
		n, err := channel.WriteFull(w, payload, 10)
		if err != nil || n != len(payload)-10 {
			t.Errorf("WriteFull(): got (%d, %v), want (%d, nil)", n, err, len(payload)-10)
		}
		_ = w.Close()

		r, err := o.OpenChannel("/chan/bytes.bin", opener.ModeRead)
		if err != nil {
			t.Fatalf("OpenChannel(read): got error %v, want nil", err)
		}
		defer func() { _ = r.Close() }()

		buf := make([]byte, len(payload)-10)
		if _, err := channel.ReadFull(r, buf); err != nil {
			t.Fatalf("ReadFull(): got error %v, want nil", err)
		}
		if string(buf) != string(payload[10:]) {
			t.Errorf("ReadFull(): contents differ from written payload")
		}

		if _, err := channel.ReadFull(r, make([]byte, 1)); !ioerrors.IsEndOfStream(err) {
			t.Errorf("ReadFull(past end): got %v, want END_OF_STREAM", err)
		}
	})

	t.Run("TextRoundTrip", func(t *testing.T) {
		const text = "naïve café"

		w, err := o.OpenChannel("/chan/text.txt", opener.ModeOverwrite)
		if err != nil {
			t.Fatalf("OpenChannel(overwrite): got error %v, want nil", err)
		}
		tc, err := channel.NewTextChannel(w, "UTF-16LE")
		if err != nil {
			t.Fatalf("NewTextChannel(): got error %v, want nil", err)
		}
		want, _ := channel.EncodedLength(text, "UTF-16LE")
		if n, err := channel.WriteFullString(tc, text); err != nil || n != want {
			t.Errorf("WriteFullString(): got (%d, %v), want (%d, nil)", n, err, want)
		}
		_ = w.Close()

		if got := len(readFixture(t, filesystem, "/chan/text.txt")); got != want {
			t.Errorf("file size: got %d, want %d", got, want)
		}
	})
}
