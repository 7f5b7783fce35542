//go:build unit

package availability_test

import (
	"testing"
	"time"

	"open-classrooms/internal/domain/availability"

	"github.com/stretchr/testify/assert"
)

func TestCheckCooldown(t *testing.T) {
	window := 30 * time.Minute
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	at := func(ago time.Duration) *time.Time {
		ts := now.Add(-ago)
		return &ts
	}

	testCases := []struct {
		name          string
		last          *time.Time
		expectAllowed bool
		expectMinutes float64
	}{
		{name: "no stored timestamp", last: nil, expectAllowed: true},
		{name: "refreshed just now", last: at(0), expectAllowed: false, expectMinutes: 30},
		{name: "refreshed 5 minutes ago", last: at(5 * time.Minute), expectAllowed: false, expectMinutes: 25},
		{name: "boundary: one second before window", last: at(window - time.Second), expectAllowed: false, expectMinutes: 1.0 / 60},
		{name: "boundary: exactly window", last: at(window), expectAllowed: true},
		{name: "refreshed 35 minutes ago", last: at(35 * time.Minute), expectAllowed: true},
		{name: "refreshed yesterday", last: at(24 * time.Hour), expectAllowed: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision := availability.CheckCooldown(tc.last, now, window)

			assert.Equal(t, tc.expectAllowed, decision.Allowed)
			assert.InDelta(t, tc.expectMinutes, decision.RemainingMinutes(), 1e-9)
			if tc.expectAllowed {
				assert.Zero(t, decision.Remaining)
			}
		})
	}

	t.Run("timestamps in different zones compare as instants", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		if err != nil {
			t.Skip("tzdata not available")
		}
		last := now.Add(-10 * time.Minute).In(ny)

		decision := availability.CheckCooldown(&last, now, window)
		assert.False(t, decision.Allowed)
		assert.InDelta(t, 20.0, decision.RemainingMinutes(), 1e-9)
	})

	t.Run("allowed iff elapsed >= window", func(t *testing.T) {
		for offset := time.Duration(0); offset <= 2*window; offset += 90 * time.Second {
			decision := availability.CheckCooldown(at(offset), now, window)
			assert.Equal(t, offset >= window, decision.Allowed, "elapsed %s", offset)
		}
	})
}
