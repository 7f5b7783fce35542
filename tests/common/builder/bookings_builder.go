//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"open-classrooms/internal/infra/upstream"
)

// BookingsBuilder assembles the scheduling source's response for one campus day.
type BookingsBuilder struct {
	day      time.Time
	bookings map[string][]upstream.Booking
}

func NewBookingsBuilder(day time.Time) *BookingsBuilder {
	return &BookingsBuilder{
		day:      day,
		bookings: map[string][]upstream.Booking{},
	}
}

// WithBooking adds a booking given as HH:MM wall-clock times on the builder's day.
func (b *BookingsBuilder) WithBooking(classroomID, start, end string) *BookingsBuilder {
	b.bookings[classroomID] = append(b.bookings[classroomID], upstream.Booking{
		Start: b.at(start),
		End:   b.at(end),
	})
	return b
}

func (b *BookingsBuilder) at(hhmm string) time.Time {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		panic("BookingsBuilder: bad time " + hhmm)
	}
	y, mo, d := b.day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, b.day.Location())
}

func (b *BookingsBuilder) Build() map[string]any {
	return map[string]any{"bookings": b.bookings}
}
