package opener

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		probe   Probe
		want    OptionSet
		wantErr error
	}{
		{"read existing", ModeRead, Probe{Exists: true, Readable: true}, OptRead, nil},
		{"read missing", ModeRead, Probe{}, 0, fs.ErrNotExist},
		{"read unreadable", ModeRead, Probe{Exists: true}, 0, ErrNotReadable},
		{"overwrite missing", ModeOverwrite, Probe{}, OptCreate | OptWrite | OptTruncate, nil},
		{"overwrite writable", ModeOverwrite, Probe{Exists: true, Writable: true}, OptCreate | OptWrite | OptTruncate, nil},
		{"overwrite read-only", ModeOverwrite, Probe{Exists: true, Readable: true}, 0, ErrNotWritable},
		{"append missing", ModeAppend, Probe{}, OptCreate | OptAppend, nil},
		{"append writable", ModeAppend, Probe{Exists: true, Writable: true}, OptCreate | OptAppend, nil},
		{"append read-only", ModeAppend, Probe{Exists: true}, 0, ErrNotWritable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.mode, tt.probe)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UnknownMode(t *testing.T) {
	_, err := Resolve(Mode(42), Probe{Exists: true, Readable: true, Writable: true})
	require.Error(t, err)
}

func TestResolve_NotExclusive(t *testing.T) {
	// Writing modes never require the file to be absent.
	for _, mode := range []Mode{ModeOverwrite, ModeAppend} {
		opts, err := Resolve(mode, Probe{Exists: true, Writable: true})
		require.NoError(t, err)
		require.NotZero(t, opts.Flags()&os.O_CREATE)
		require.Zero(t, opts.Flags()&os.O_EXCL)
	}
}

func TestOptionSet_Flags(t *testing.T) {
	tests := []struct {
		name string
		opts OptionSet
		want int
	}{
		{"read", OptRead, os.O_RDONLY},
		{"overwrite", OptCreate | OptWrite | OptTruncate, os.O_WRONLY | os.O_CREATE | os.O_TRUNC},
		{"append", OptCreate | OptAppend, os.O_WRONLY | os.O_CREATE | os.O_APPEND},
		{"read write", OptRead | OptWrite, os.O_RDWR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.opts.Flags())
		})
	}
}

func TestOptionSet_String(t *testing.T) {
	require.Equal(t, "NONE", OptionSet(0).String())
	require.Equal(t, "READ", OptRead.String())
	require.Equal(t, "CREATE|WRITE|TRUNCATE", (OptCreate | OptWrite | OptTruncate).String())
	require.Equal(t, "CREATE|APPEND", (OptCreate | OptAppend).String())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"r", ModeRead, false},
		{"read", ModeRead, false},
		{"READ", ModeRead, false},
		{"w", ModeOverwrite, false},
		{"overwrite", ModeOverwrite, false},
		{"write", ModeOverwrite, false},
		{" a ", ModeAppend, false},
		{"append", ModeAppend, false},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "read", ModeRead.String())
	require.Equal(t, "overwrite", ModeOverwrite.String())
	require.Equal(t, "append", ModeAppend.String())
	require.Equal(t, "Mode(9)", Mode(9).String())
	require.False(t, ModeRead.Writes())
	require.True(t, ModeAppend.Writes())
}
