package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(KindAccessDenied, "access denied")
	err = WithContext(err, "path", "/var/log/app.log")

	ctx := err.Context()
	require.NotNil(t, ctx)
	require.Equal(t, "/var/log/app.log", ctx["path"])
	require.Equal(t, KindAccessDenied, err.Kind())
}

func TestWithContext_Chaining(t *testing.T) {
	err := New(KindGeneric, "partial write")
	err = WithContext(err, "expected", 10)
	err = WithContext(err, "actual", 4)

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, 10, ctx["expected"])
	require.Equal(t, 4, ctx["actual"])
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, KindGeneric, err.Kind())
	require.Equal(t, "standard error", err.Message())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(KindGeneric, "generic")
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())

	// The returned map is a copy.
	ctx := modified.Context()
	ctx["key"] = "mutated"
	require.Equal(t, "value", modified.Context()["key"])
}

func TestWithContextMap_Override(t *testing.T) {
	err := WithContext(New(KindGeneric, "x"), "path", "/old")
	err = WithContextMap(err, map[string]interface{}{
		"path": "/new",
		"mode": "append",
	})

	ctx := err.Context()
	require.Equal(t, "/new", ctx["path"])
	require.Equal(t, "append", ctx["mode"])
}
