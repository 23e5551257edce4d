package booking

import (
	"fmt"
	"iter"

	"github.com/sportarena/booking-backend/internal/pkg/apperror"
	"github.com/sportarena/booking-backend/internal/timeslot"
)

// ProjectOccupancy computes the occupancy of every grid slot on date.
// sameDay holds the bookings starting on date, prevDay those starting the
// day before; an overnight booking from prevDay bleeds into the first slots
// of date. Both inputs are assumed to be pre-filtered by sport when a sport
// filter applies.
//
// Under the conflict-freedom invariant at most one booking can cover a slot.
// If two do, the stored data is corrupt (the repository's atomicity guarantee
// was violated) and an integrity error is returned instead of silently
// picking a winner.
//
// The returned sequence is lazy, finite and restartable, ordered from 00:00.
func ProjectOccupancy(date string, grid timeslot.Grid, sameDay, prevDay []*Booking) (iter.Seq[TimeSlot], error) {
	if _, err := ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}

	type entry struct {
		b        *Booking
		start    int
		end      int
		fromPrev bool
	}

	entries := make([]entry, 0, len(sameDay)+len(prevDay))
	for _, b := range sameDay {
		start, end, err := bookingMinutes(b)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{b: b, start: start, end: end})
	}
	for _, b := range prevDay {
		if !b.SpansMidnight {
			continue // stays entirely on its own date
		}
		start, end, err := bookingMinutes(b)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{b: b, start: start, end: end, fromPrev: true})
	}

	occupantAt := func(t int) (*Booking, error) {
		var found *Booking
		for _, e := range entries {
			covers := false
			switch {
			case e.fromPrev:
				// Early-morning bleed-through from yesterday's overnight booking.
				covers = t < e.end
			case e.b.SpansMidnight:
				// Evening portion on the booking's own start date.
				covers = t >= e.start
			default:
				covers = e.start <= t && t < e.end
			}
			if !covers {
				continue
			}
			if found != nil {
				return nil, apperror.Wrap(
					fmt.Errorf("bookings %s and %s both cover %s on %s", found.ID, e.b.ID, timeslot.FormatMinutes(t), date),
					ErrIntegrity.Code, ErrIntegrity.Kind, ErrIntegrity.Message,
				)
			}
			found = e.b
		}
		return found, nil
	}

	// Pre-scan the whole grid so corruption surfaces as an error up front
	// rather than mid-iteration.
	slots := make([]TimeSlot, 0, grid.Size())
	for t := range grid.Minutes() {
		b, err := occupantAt(t)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{
			Time:      timeslot.FormatMinutes(t),
			Available: b == nil,
			Booking:   b,
		})
	}

	return func(yield func(TimeSlot) bool) {
		for _, s := range slots {
			if !yield(s) {
				return
			}
		}
	}, nil
}

func bookingMinutes(b *Booking) (start, end int, err error) {
	start, err = timeslot.ToMinutes(b.StartTime)
	if err != nil {
		return 0, 0, apperror.Wrap(err, ErrInvalidRange.Code, ErrInvalidRange.Kind, ErrInvalidRange.Message)
	}
	end, err = timeslot.ToMinutes(b.EndTime)
	if err != nil {
		return 0, 0, apperror.Wrap(err, ErrInvalidRange.Code, ErrInvalidRange.Kind, ErrInvalidRange.Message)
	}
	return start, end, nil
}
