package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("returns the single error unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		argErr := NewArgumentError(ErrArgumentNil, "db", nil, "")
		c.Add(argErr)

		assert.Same(t, argErr, c.GetError())
	})

	t.Run("joins several guard failures", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(NewArgumentError(ErrEmptyString, "name", "", ""))
		c.Add(nil)
		c.Add(NewArgumentError(ErrArgumentOutOfRange, "port", 70000, ""))

		require.Equal(t, 2, c.Len())

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrEmptyString)
		require.ErrorIs(t, err, ErrArgumentOutOfRange)
		assert.Contains(t, err.Error(), "name: empty string")
		assert.Contains(t, err.Error(), "port: argument out of range")
	})

	t.Run("clear resets the collection", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("boom")) //nolint:err113
		c.Clear()

		assert.False(t, c.HasError())
		assert.NoError(t, c.GetError())
	})
}

func TestKind_Hierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     *Kind
		ancestor *Kind
		want     bool
	}{
		{name: "kind matches itself", kind: ErrEmptyString, ancestor: ErrEmptyString, want: true},
		{name: "empty string is a string failure", kind: ErrEmptyString, ancestor: ErrString, want: true},
		{name: "empty string is an argument failure", kind: ErrEmptyString, ancestor: ErrArgument, want: true},
		{name: "range boundary is out of range", kind: ErrInvalidRangeBoundary, ancestor: ErrArgumentOutOfRange, want: true},
		{name: "scheme is a uri failure", kind: ErrInvalidURIScheme, ancestor: ErrURI, want: true},
		{name: "siblings do not match", kind: ErrEmptyString, ancestor: ErrWhiteSpaceString, want: false},
		{name: "parent does not match child", kind: ErrString, ancestor: ErrEmptyString, want: false},
		{name: "invalid state is not an argument failure", kind: ErrInvalidState, ancestor: ErrArgument, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, errors.Is(testCase.kind, testCase.ancestor))
		})
	}
}

func TestKind_IsIgnoresForeignErrors(t *testing.T) {
	t.Parallel()

	assert.False(t, ErrArgument.Is(errors.New("invalid argument"))) //nolint:err113
	assert.Nil(t, ErrArgument.Parent())
	assert.Same(t, ErrString, ErrEmptyString.Parent())
}

func TestArgumentError(t *testing.T) {
	t.Parallel()

	t.Run("message defaults to name and kind", func(t *testing.T) {
		t.Parallel()

		err := NewArgumentError(ErrArgumentNil, "client", nil, "")
		assert.Equal(t, "client: argument is nil", err.Error())
	})

	t.Run("explicit message wins", func(t *testing.T) {
		t.Parallel()

		err := NewArgumentError(ErrArgumentNil, "client", nil, "client must be configured")
		assert.Equal(t, "client must be configured", err.Error())
	})

	t.Run("missing kind falls back to the root", func(t *testing.T) {
		t.Parallel()

		err := &ArgumentError{}
		assert.Equal(t, "invalid argument", err.Error())
		assert.Empty(t, err.Unwrap())
	})

	t.Run("cause is unwrapped alongside the kind", func(t *testing.T) {
		t.Parallel()

		base := NewArgumentError(ErrArgument, "request", nil, "")
		err := base.WithCause(ErrValidation)

		require.ErrorIs(t, err, ErrArgument)
		require.ErrorIs(t, err, ErrValidation)
		require.NotErrorIs(t, base, ErrValidation)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		t.Parallel()

		inner := NewArgumentError(ErrStringLength, "token", "abc", "")
		wrapped := fmt.Errorf("loading config: %w", inner)

		require.ErrorIs(t, wrapped, ErrStringLength)
		require.ErrorIs(t, wrapped, ErrString)
		require.ErrorIs(t, wrapped, ErrArgument)

		var argErr *ArgumentError
		require.ErrorAs(t, wrapped, &argErr)
		assert.Equal(t, "token", argErr.Name)
		assert.Equal(t, "abc", argErr.Value)
	})
}
