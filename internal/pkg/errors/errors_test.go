package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/consoletracker/console-catalog/internal/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Parallel()

	err := apperrors.New(apperrors.NotFound, "source file not found")

	require.Error(t, err)
	assert.Equal(t, "[NotFound] source file not found", err.Error())

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.NotFound, appErr.Type())
	assert.Equal(t, "source file not found", appErr.Message())
	assert.NotEmpty(t, appErr.Stack(), "stack should be captured at creation")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("wraps cause and keeps chain", func(t *testing.T) {
		t.Parallel()

		cause := stderrors.New("permission denied")
		err := apperrors.Wrap(cause, apperrors.System, "catalog load failed")

		assert.Equal(t, "[System] catalog load failed: permission denied", err.Error())
		assert.Equal(t, cause, apperrors.RootCause(err))
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("nil cause returns nil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, apperrors.Wrap(nil, apperrors.System, "ignored"))
		assert.NoError(t, apperrors.Wrapf(nil, apperrors.System, "ignored %d", 1))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	inner := apperrors.New(apperrors.ParsingFailed, "malformed record")
	outer := apperrors.Wrap(inner, apperrors.System, "source read failed")

	assert.True(t, apperrors.Is(outer, apperrors.System))
	assert.True(t, apperrors.Is(outer, apperrors.ParsingFailed), "type anywhere in the chain should match")
	assert.False(t, apperrors.Is(outer, apperrors.NotFound))
	assert.False(t, apperrors.Is(nil, apperrors.System))
}

func TestFormat_Verbose(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("unexpected token")
	err := apperrors.Wrap(cause, apperrors.ParsingFailed, "record decode failed")

	formatted := fmt.Sprintf("%+v", err)

	assert.Contains(t, formatted, "[ParsingFailed] record decode failed")
	assert.Contains(t, formatted, "Stack trace:")
	assert.Contains(t, formatted, "Caused by:")
	assert.Contains(t, formatted, "unexpected token")
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType apperrors.ErrorType
		want    string
	}{
		{apperrors.Unknown, "Unknown"},
		{apperrors.Internal, "Internal"},
		{apperrors.System, "System"},
		{apperrors.InvalidInput, "InvalidInput"},
		{apperrors.NotFound, "NotFound"},
		{apperrors.ParsingFailed, "ParsingFailed"},
		{apperrors.Unavailable, "Unavailable"},
		{apperrors.ErrorType(999), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.errType.String())
	}
}
