package exiterr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResolve_Precedence walks the full precedence ladder with one case per
// rung plus the overrides between rungs.
func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error is success",
			err:      nil,
			expected: ExitSuccess,
		},
		{
			name:     "gack wins over explicit exit code",
			err:      Exit(errors.New(gackMsg), 7),
			expected: ExitGack,
		},
		{
			name:     "gack wins over type error",
			err:      &Error{Msg: "TypeError: " + gackMsg},
			expected: ExitGack,
		},
		{
			name:     "type error wins over explicit exit code",
			err:      Exit(&Error{Msg: "boom", Name: "TypeError"}, 7),
			expected: ExitTypeError,
		},
		{
			name:     "framework exit wins over explicit exit code",
			err:      FrameworkExit(5, Exit(errors.New("boom"), 7)),
			expected: 5,
		},
		{
			name:     "explicit exit code",
			err:      Exit(errors.New("boom"), 3),
			expected: 3,
		},
		{
			name:     "numeric symbolic code",
			err:      &Error{Msg: "boom", Code: "4"},
			expected: 4,
		},
		{
			name:     "non-numeric code forces default, not fallback",
			err:      &Error{Msg: "boom", Code: "ABC"},
			expected: ExitDefault,
		},
		{
			name:     "bare error falls back to default",
			err:      errors.New("boom"),
			expected: ExitDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.err, ExitDefault))
		})
	}
}

// TestResolve_Fallback verifies the caller-supplied fallback replaces the
// ambient default for unclassified errors only.
func TestResolve_Fallback(t *testing.T) {
	bare := errors.New("boom")

	assert.Equal(t, 9, Resolve(bare, 9))
	assert.Equal(t, ExitDefault, Resolve(bare, 0), "non-positive fallback yields the default")
	assert.Equal(t, ExitDefault, Resolve(bare, -2))

	// A fallback never overrides a classified error.
	assert.Equal(t, ExitGack, Resolve(errors.New(gackMsg), 9))
	assert.Equal(t, 3, Resolve(Exit(bare, 3), 9))
	assert.Equal(t, ExitDefault, Resolve(&Error{Msg: "boom", Code: "ABC"}, 9),
		"a non-numeric code still pre-empts the fallback")
}

// TestResolve_ChainProbing verifies that exit directives are found through
// wrapping layers, and that an empty code on a wrapper does not shadow a
// coded cause.
func TestResolve_ChainProbing(t *testing.T) {
	assert.Equal(t, 3, Resolve(fmt.Errorf("context: %w", Exit(errors.New("boom"), 3)), ExitDefault))
	assert.Equal(t, 5, Resolve(fmt.Errorf("context: %w", FrameworkExit(5, nil)), ExitDefault))

	wrapped := &Error{Msg: "outer", Err: &Error{Msg: "inner", Code: "4"}}
	assert.Equal(t, 4, Resolve(wrapped, ExitDefault))
}

// TestResolveDefault pins the convenience wrapper to fallback 1.
func TestResolveDefault(t *testing.T) {
	assert.Equal(t, ExitDefault, ResolveDefault(errors.New("boom")))
	assert.Equal(t, ExitSuccess, ResolveDefault(nil))
}

// TestExitWrappers covers the Error/Unwrap surface of the exit directive
// wrappers, including the nil-cause messages.
func TestExitWrappers(t *testing.T) {
	base := errors.New("boom")

	withCode := Exit(base, 3)
	assert.Equal(t, "boom", withCode.Error())
	assert.ErrorIs(t, withCode, base)

	bare := Exit(nil, 3)
	assert.Equal(t, "exit code 3", bare.Error())

	fw := FrameworkExit(5, base)
	assert.Equal(t, "boom", fw.Error())
	assert.ErrorIs(t, fw, base)

	fwBare := FrameworkExit(5, nil)
	assert.Equal(t, "framework exit 5", fwBare.Error())
}
