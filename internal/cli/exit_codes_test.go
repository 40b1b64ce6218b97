package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	clierrors "github.com/ariel-frischer/chog/internal/errors"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want int
	}{
		"nil": {
			err:  nil,
			want: ExitSuccess,
		},
		"plain error": {
			err:  errors.New("boom"),
			want: ExitFailure,
		},
		"argument error": {
			err:  clierrors.NewArgumentError("bad argument"),
			want: ExitUsage,
		},
		"wrapped argument error": {
			err:  fmt.Errorf("context: %w", clierrors.InvalidVersion("x", errors.New("parse"))),
			want: ExitUsage,
		},
		"prerequisite error": {
			err:  clierrors.NonInteractive(),
			want: ExitFailure,
		},
		"configuration error": {
			err:  clierrors.ConfigInvalid(errors.New("bad yaml")),
			want: ExitFailure,
		},
		"explicit exit error": {
			err:  NewExitError(3),
			want: 3,
		},
		"exit error wins over category": {
			err:  &ExitError{Code: 2, Err: clierrors.NewArgumentError("bad")},
			want: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	bare := NewExitError(ExitUsage)
	assert.Equal(t, "exit status 64", bare.Error())
	assert.Nil(t, bare.Unwrap())

	cause := errors.New("write failed")
	wrapped := &ExitError{Code: ExitFailure, Err: cause}
	assert.Equal(t, "write failed", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}
