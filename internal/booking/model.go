package booking

import (
	"net/http"
	"time"

	"github.com/sportarena/booking-backend/internal/pkg/apperror"
	"github.com/sportarena/booking-backend/internal/sport"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, apperror.KindNotFound, "booking not found")
	ErrTimeConflict  = apperror.New(http.StatusConflict, apperror.KindConflictDetected, "time slot already booked")
	ErrInvalidRange  = apperror.New(http.StatusBadRequest, apperror.KindInvalidRange, "invalid booking time range")
	ErrInvalidPeriod = apperror.New(http.StatusBadRequest, apperror.KindInvalidPeriod, "invalid report period")
	ErrInvalidSport  = apperror.New(http.StatusBadRequest, apperror.KindInvalidInput, "unknown sport")
	ErrInvalidDate   = apperror.New(http.StatusBadRequest, apperror.KindInvalidInput, "invalid date, want YYYY-MM-DD")
	ErrInvalidAmount = apperror.New(http.StatusBadRequest, apperror.KindInvalidInput, "amount must be non-negative")
	ErrIntegrity     = apperror.New(http.StatusInternalServerError, apperror.KindIntegrityViolation, "overlapping bookings stored for the same slot")
)

// DateLayout is the calendar date format used across the model. Dates are
// compared as strings, which is correct because the layout is zero-padded
// and fixed-width.
const DateLayout = "2006-01-02"

// Booking is a reservation of one sport for a continuous wall-clock span.
// A booking whose end time-of-day is earlier than its start spans midnight:
// it occupies [StartTime, 24:00) on Date and [00:00, EndTime) on the next
// day, but is stored as a single row. SpansMidnight is derived once at
// creation and persisted; read paths trust the stored flag instead of
// re-inferring it.
type Booking struct {
	ID            string
	Sport         sport.Sport
	Date          string // YYYY-MM-DD, the start date
	StartTime     string // HH:MM, 24-hour wall clock
	EndTime       string // HH:MM, 24-hour wall clock
	SpansMidnight bool
	Amount        float64
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TimeSlot is the query-scoped occupancy state of one grid slot. It is never
// persisted.
type TimeSlot struct {
	Time      string // grid label, HH:MM
	Available bool
	Booking   *Booking // covering booking when occupied
}

// Stats is the aggregate computed over the bookings matching a period and
// optional sport filter. The by-sport maps always carry every sport, with
// explicit zeroes for sports that have no matches.
type Stats struct {
	TotalBookings   int
	TotalRevenue    float64
	BookingsBySport map[sport.Sport]int
	RevenueBySport  map[sport.Sport]float64
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Date  string       // exact start date, YYYY-MM-DD; empty for any
	Sport *sport.Sport // nil for all sports
}

// ParseDate validates a calendar date string against DateLayout.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// PrevDate returns the calendar day before the given date.
func PrevDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(DateLayout), nil
}
