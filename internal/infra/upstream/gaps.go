package upstream

import (
	"sort"
	"time"

	"open-classrooms/internal/domain/availability"
	"open-classrooms/internal/domain/catalog"
)

type Booking struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// GapPolicy decides which gaps between bookings are long enough to report. A gap qualifies when it
// lasts at least MinGap+Buffer; the buffer absorbs a class running over or starting early.
type GapPolicy struct {
	MinGap time.Duration
	Buffer time.Duration
}

func (p GapPolicy) required() time.Duration {
	return p.MinGap + p.Buffer
}

// FreeWindows returns the qualifying gaps inside the building's business hours on day, in
// chronological order. day may be any instant on the wanted date; its location is the campus
// timezone.
func FreeWindows(day time.Time, b catalog.Building, bookings []Booking, policy GapPolicy) []availability.Slot {
	y, m, d := day.Date()
	loc := day.Location()
	startMin, endMin := b.BusinessMinutes()
	open := time.Date(y, m, d, 0, startMin, 0, 0, loc)
	closing := time.Date(y, m, d, 0, endMin, 0, 0, loc)

	clipped := make([]Booking, 0, len(bookings))
	for _, bk := range bookings {
		s, e := bk.Start, bk.End
		if s.Before(open) {
			s = open
		}
		if e.After(closing) {
			e = closing
		}
		if !s.Before(e) {
			continue
		}
		clipped = append(clipped, Booking{Start: s, End: e})
	}
	sort.Slice(clipped, func(i, j int) bool { return clipped[i].Start.Before(clipped[j].Start) })

	slots := []availability.Slot{}
	emit := func(from, to time.Time) {
		if to.Sub(from) >= policy.required() {
			slots = append(slots, availability.Slot{
				Start: wallClock(from, open),
				End:   wallClock(to, open),
			})
		}
	}

	cursor := open
	for _, bk := range clipped {
		if bk.Start.After(cursor) {
			emit(cursor, bk.Start)
		}
		if bk.End.After(cursor) {
			cursor = bk.End
		}
	}
	if closing.After(cursor) {
		emit(cursor, closing)
	}
	return slots
}

// wallClock formats t as HH:MM on the campus clock; midnight at the end of the day is 24:00.
func wallClock(t, open time.Time) string {
	local := t.In(open.Location())
	if local.Hour() == 0 && local.Minute() == 0 && local.After(open) {
		return "24:00"
	}
	return local.Format("15:04")
}
