package booking

import (
	"github.com/sportarena/booking-backend/internal/sport"
	"github.com/sportarena/booking-backend/internal/timeslot"
)

// CheckConflict reports whether a requested booking overlaps any existing
// booking of the same sport. It is a pure function over its inputs; the
// repository layer is responsible for making the check-then-insert sequence
// atomic (see the unique index backstop in the pgx repository).
//
// existing must contain the bookings for date and for the previous day,
// because an overnight booking started yesterday can still occupy the first
// minutes of date. Each booking's occupied interval is computed relative to
// its own start date and translated onto a shared timeline before testing.
//
// Returns the first conflicting booking, or nil when the slot is free.
func CheckConflict(sp sport.Sport, date, start, end string, existing []*Booking) (*Booking, error) {
	startMin, err := timeslot.ToMinutes(start)
	if err != nil {
		return nil, ErrInvalidRange
	}
	endMin, err := timeslot.ToMinutes(end)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if startMin == endMin {
		return nil, ErrInvalidRange
	}
	reqDay, err := ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	reqIntervals := absoluteIntervals(0, startMin, endMin)

	for _, b := range existing {
		if b.Sport != sp {
			continue
		}
		day, err := ParseDate(b.Date)
		if err != nil {
			continue
		}
		// Whole days between the existing booking's date and the requested one.
		offset := int(day.Sub(reqDay).Hours() / 24)
		if offset < -1 || offset > 1 {
			continue
		}

		bStart, err := timeslot.ToMinutes(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := timeslot.ToMinutes(b.EndTime)
		if err != nil {
			continue
		}

		for _, ri := range reqIntervals {
			for _, bi := range absoluteIntervals(offset, bStart, bEnd) {
				if ri.Start < bi.End && bi.Start < ri.End {
					return b, nil
				}
			}
		}
	}

	return nil, nil
}

// absoluteIntervals places a wall-clock interval onto a shared minute
// timeline anchored at midnight of the requested date. offsetDays shifts the
// interval by whole days; overnight intervals are split first so each piece
// lands on its actual calendar day.
func absoluteIntervals(offsetDays, start, end int) []timeslot.Interval {
	base := offsetDays * timeslot.MinutesPerDay
	pieces := timeslot.SplitOvernight(start, end)
	out := make([]timeslot.Interval, 0, len(pieces))
	for i, p := range pieces {
		// The second piece of an overnight split belongs to the next day.
		shift := base + i*timeslot.MinutesPerDay
		out = append(out, timeslot.Interval{Start: p.Start + shift, End: p.End + shift})
	}
	return out
}
