package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportarena/booking-backend/internal/booking"
	"github.com/sportarena/booking-backend/internal/sport"
)

func mkBooking(id string, sp sport.Sport, date, start, end string) *booking.Booking {
	return &booking.Booking{
		ID:            id,
		Sport:         sp,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		SpansMidnight: end < start,
		Amount:        500,
	}
}

func TestCheckConflict(t *testing.T) {
	tests := []struct {
		name       string
		sport      sport.Sport
		date       string
		start, end string
		existing   []*booking.Booking
		wantID     string // empty means no conflict
	}{
		{
			name:  "no existing bookings",
			sport: sport.Cricket, date: "2024-01-02", start: "10:00", end: "11:00",
		},
		{
			name:  "disjoint same day",
			sport: sport.Cricket, date: "2024-01-02", start: "10:00", end: "11:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-02", "14:00", "15:00")},
		},
		{
			name:  "adjacent is not a conflict",
			sport: sport.Cricket, date: "2024-01-02", start: "10:00", end: "11:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-02", "11:00", "12:00")},
		},
		{
			name:  "partial overlap",
			sport: sport.Cricket, date: "2024-01-02", start: "10:00", end: "12:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-02", "11:00", "13:00")},
			wantID:   "b1",
		},
		{
			name:  "identical interval",
			sport: sport.Football, date: "2024-01-02", start: "10:00", end: "11:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Football, "2024-01-02", "10:00", "11:00")},
			wantID:   "b1",
		},
		{
			name:  "different sport never conflicts",
			sport: sport.Football, date: "2024-01-02", start: "10:00", end: "11:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-02", "10:00", "11:00")},
		},
		{
			name:  "previous-day overnight bleeds into requested morning",
			sport: sport.Cricket, date: "2024-01-02", start: "00:00", end: "01:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-01", "23:00", "01:00")},
			wantID:   "b1",
		},
		{
			name:  "previous-day overnight ends before requested start",
			sport: sport.Cricket, date: "2024-01-02", start: "01:00", end: "02:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-01", "23:00", "01:00")},
		},
		{
			name:  "requested overnight clashes with same evening",
			sport: sport.Cricket, date: "2024-01-02", start: "23:00", end: "01:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-02", "22:00", "23:30")},
			wantID:   "b1",
		},
		{
			name:  "two overnights on consecutive days",
			sport: sport.Gaming, date: "2024-01-02", start: "00:30", end: "02:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Gaming, "2024-01-01", "22:00", "01:00")},
			wantID:   "b1",
		},
		{
			name:  "previous-day non-overnight stays on its own date",
			sport: sport.Cricket, date: "2024-01-02", start: "10:00", end: "11:00",
			existing: []*booking.Booking{mkBooking("b1", sport.Cricket, "2024-01-01", "10:00", "11:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.CheckConflict(tt.sport, tt.date, tt.start, tt.end, tt.existing)
			require.NoError(t, err)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestCheckConflictInvalidInput(t *testing.T) {
	t.Run("start equals end", func(t *testing.T) {
		_, err := booking.CheckConflict(sport.Cricket, "2024-01-02", "10:00", "10:00", nil)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := booking.CheckConflict(sport.Cricket, "2024-01-02", "25:00", "26:00", nil)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := booking.CheckConflict(sport.Cricket, "02-01-2024", "10:00", "11:00", nil)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestCheckConflictSymmetry(t *testing.T) {
	// For disjoint non-overnight bookings A and B of the same sport and
	// date, neither conflicts with the other.
	a := mkBooking("a", sport.Football, "2024-01-02", "09:00", "10:30")
	b := mkBooking("b", sport.Football, "2024-01-02", "10:30", "12:00")

	got, err := booking.CheckConflict(a.Sport, a.Date, a.StartTime, a.EndTime, []*booking.Booking{b})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = booking.CheckConflict(b.Sport, b.Date, b.StartTime, b.EndTime, []*booking.Booking{a})
	require.NoError(t, err)
	assert.Nil(t, got)
}
