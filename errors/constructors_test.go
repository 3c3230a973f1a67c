package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(KindFileNotFound, "file not found: /tmp/missing")

	require.NotNil(t, err)
	require.Equal(t, KindFileNotFound, err.Kind())
	require.Equal(t, "file not found: /tmp/missing", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[FILE_NOT_FOUND] file not found: /tmp/missing", err.Error())
}

func TestNew_AllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			err := New(kind, "test message")
			require.Equal(t, kind, err.Kind())
		})
	}
}

func TestNew_UnknownKindIsGeneric(t *testing.T) {
	err := New(ErrorKind("TIMEOUT"), "took too long")
	require.Equal(t, KindGeneric, err.Kind())
	require.Equal(t, "took too long", err.Message())
}

func TestNewf(t *testing.T) {
	err := Newf(KindAccessDenied, "access denied: %s (%d)", "/root/x", 13)

	require.Equal(t, KindAccessDenied, err.Kind())
	require.Equal(t, "access denied: /root/x (13)", err.Message())
}

func TestNewEndOfStream(t *testing.T) {
	err := NewEndOfStream()

	require.Equal(t, KindEndOfStream, err.Kind())
	require.Equal(t, "EoF when reading from the channel", err.Message())
	require.True(t, IsEndOfStream(err))
}

func TestErrorKind_Valid(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
		want bool
	}{
		{"generic", KindGeneric, true},
		{"end of stream", KindEndOfStream, true},
		{"file not found", KindFileNotFound, true},
		{"access denied", KindAccessDenied, true},
		{"empty", ErrorKind(""), false},
		{"unknown", ErrorKind("UNKNOWN"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.Valid())
		})
	}
}
