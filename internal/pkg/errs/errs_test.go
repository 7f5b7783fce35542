//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"open-classrooms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches sentinel and keeps message", func(t *testing.T) {
		base := errors.New("dial tcp: connection refused")
		marked := errs.Mark(errs.Wrap(base, "get snapshot"), errs.ErrStoreUnavailable)

		assert.True(t, errs.Is(marked, errs.ErrStoreUnavailable))
		assert.True(t, errs.Is(marked, base))
		assert.False(t, errs.Is(marked, errs.ErrUpstreamUnavailable))
		assert.Contains(t, marked.Error(), "get snapshot")
		assert.NotContains(t, marked.Error(), errs.ErrStoreUnavailable.Error())
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrUpstreamUnavailable, errs.Mark(nil, errs.ErrUpstreamUnavailable))
	})

	t.Run("wrap of nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
		assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "outer")

	lines := errs.ExtractStackLines(err, 3)
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "outer")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
