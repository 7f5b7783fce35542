//go:build unit

package upstream_test

import (
	"testing"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/domain/catalog"
	"open-classrooms/internal/infra/upstream"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFreeWindows(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 6, 0, 0, 0, ny)
	at := func(h, m int) time.Time { return time.Date(2025, 3, 10, h, m, 0, 0, ny) }
	cas := catalog.Building{Code: "CAS", BusinessStartHour: 7, BusinessEndHour: 23}
	cgs := catalog.Building{Code: "CGS", BusinessStartHour: 7, BusinessEndHour: 21.5}
	policy := upstream.GapPolicy{MinGap: 28 * time.Minute, Buffer: 2 * time.Minute}

	testCases := []struct {
		name     string
		building catalog.Building
		bookings []upstream.Booking
		expected []availability.Slot
	}{
		{
			name:     "no bookings: whole business day",
			building: cas,
			expected: []availability.Slot{{Start: "07:00", End: "23:00"}},
		},
		{
			name:     "half hour closing is honoured",
			building: cgs,
			expected: []availability.Slot{{Start: "07:00", End: "21:30"}},
		},
		{
			name:     "single booking splits the day",
			building: cas,
			bookings: []upstream.Booking{{Start: at(10, 0), End: at(11, 15)}},
			expected: []availability.Slot{{Start: "07:00", End: "10:00"}, {Start: "11:15", End: "23:00"}},
		},
		{
			name:     "unsorted and overlapping bookings are merged",
			building: cas,
			bookings: []upstream.Booking{
				{Start: at(13, 0), End: at(14, 0)},
				{Start: at(9, 0), End: at(11, 0)},
				{Start: at(10, 30), End: at(12, 0)},
			},
			expected: []availability.Slot{
				{Start: "07:00", End: "09:00"},
				{Start: "12:00", End: "13:00"},
				{Start: "14:00", End: "23:00"},
			},
		},
		{
			name:     "boundary: exactly 30 minute gap qualifies",
			building: cas,
			bookings: []upstream.Booking{{Start: at(7, 0), End: at(9, 0)}, {Start: at(9, 30), End: at(23, 0)}},
			expected: []availability.Slot{{Start: "09:00", End: "09:30"}},
		},
		{
			name:     "boundary: 29 minute gap is dropped",
			building: cas,
			bookings: []upstream.Booking{{Start: at(7, 0), End: at(9, 0)}, {Start: at(9, 29), End: at(23, 0)}},
			expected: []availability.Slot{},
		},
		{
			name:     "bookings outside business hours are clipped",
			building: cas,
			bookings: []upstream.Booking{
				{Start: at(5, 0), End: at(8, 0)},
				{Start: at(22, 0), End: at(23, 59)},
			},
			expected: []availability.Slot{{Start: "08:00", End: "22:00"}},
		},
		{
			name:     "bookings on another day are ignored",
			building: cas,
			bookings: []upstream.Booking{{Start: at(10, 0).AddDate(0, 0, 1), End: at(11, 0).AddDate(0, 0, 1)}},
			expected: []availability.Slot{{Start: "07:00", End: "23:00"}},
		},
		{
			name:     "inverted booking is ignored",
			building: cas,
			bookings: []upstream.Booking{{Start: at(11, 0), End: at(10, 0)}},
			expected: []availability.Slot{{Start: "07:00", End: "23:00"}},
		},
		{
			name:     "booking given in utc is read on the campus clock",
			building: cas,
			bookings: []upstream.Booking{{Start: at(10, 0).UTC(), End: at(11, 0).UTC()}},
			expected: []availability.Slot{{Start: "07:00", End: "10:00"}, {Start: "11:00", End: "23:00"}},
		},
		{
			name:     "fully booked",
			building: cas,
			bookings: []upstream.Booking{{Start: at(6, 0), End: at(23, 30)}},
			expected: []availability.Slot{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := upstream.FreeWindows(day, tc.building, tc.bookings, policy)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("FreeWindows mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("open until midnight renders 24:00", func(t *testing.T) {
		allDay := catalog.Building{Code: "X", BusinessStartHour: 0, BusinessEndHour: 24}
		got := upstream.FreeWindows(day, allDay, nil, policy)
		if diff := cmp.Diff([]availability.Slot{{Start: "00:00", End: "24:00"}}, got); diff != "" {
			t.Errorf("FreeWindows mismatch (-want +got):\n%s", diff)
		}
	})
}
