package http

import (
	"strings"
	"time"

	"github.com/sportarena/booking-backend/internal/booking"
	"github.com/sportarena/booking-backend/internal/sport"
	"github.com/sportarena/booking-backend/internal/timeslot"
)

// CreateBookingBody is the wire shape accepted on create. Field names follow
// the public API contract (camelCase), not the internal model.
type CreateBookingBody struct {
	Sport     string  `json:"sport" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	StartTime string  `json:"startTime" binding:"required"`
	EndTime   string  `json:"endTime" binding:"required"`
	Amount    float64 `json:"amount"`
	CreatedBy string  `json:"createdBy"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	Sport         string    `json:"sport"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	SpansMidnight bool      `json:"spans_midnight"`
	Amount        float64   `json:"amount"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Sport:         string(b.Sport),
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		SpansMidnight: b.SpansMidnight,
		Amount:        b.Amount,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type TimeSlotResponse struct {
	Time      string           `json:"time"`
	Label     string           `json:"label"`
	Available bool             `json:"available"`
	Booking   *BookingResponse `json:"booking,omitempty"`
}

type AvailabilityResponse struct {
	Date        string             `json:"date"`
	Sport       string             `json:"sport,omitempty"`
	StepMinutes int                `json:"step_minutes"`
	Slots       []TimeSlotResponse `json:"slots"`
}

func NewTimeSlotResponse(s booking.TimeSlot) TimeSlotResponse {
	// The 12-hour label cannot fail for grid-produced HH:MM values.
	label, _ := timeslot.To12Hour(s.Time)
	resp := TimeSlotResponse{
		Time:      s.Time,
		Label:     label,
		Available: s.Available,
	}
	if s.Booking != nil {
		b := NewBookingResponse(s.Booking)
		resp.Booking = &b
	}
	return resp
}

type StatsResponse struct {
	TotalBookings   int                     `json:"total_bookings"`
	TotalRevenue    float64                 `json:"total_revenue"`
	BookingsBySport map[sport.Sport]int     `json:"bookings_by_sport"`
	RevenueBySport  map[sport.Sport]float64 `json:"revenue_by_sport"`
}

func NewStatsResponse(s booking.Stats) StatsResponse {
	return StatsResponse{
		TotalBookings:   s.TotalBookings,
		TotalRevenue:    s.TotalRevenue,
		BookingsBySport: s.BookingsBySport,
		RevenueBySport:  s.RevenueBySport,
	}
}

// NormalizeClock maps boundary time values onto the canonical "HH:MM" form.
// Values may arrive as bare digit strings ("930", "1700") or loosely padded
// clock values ("9:30"). Unrecognizable input is returned unchanged so that
// validation downstream reports it.
func NormalizeClock(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return s
	}
	if hh, mm, ok := strings.Cut(s, ":"); ok {
		if len(hh) == 1 {
			hh = "0" + hh
		}
		if mm == "" {
			mm = "00"
		}
		if len(mm) == 1 {
			mm = "0" + mm
		}
		return hh + ":" + mm[:2]
	}
	if len(s) > 4 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	for len(s) < 4 {
		s = "0" + s
	}
	return s[:2] + ":" + s[2:]
}
