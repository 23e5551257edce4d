package booking

import (
	"time"

	"github.com/sportarena/booking-backend/internal/sport"
)

// Period scopes an aggregation to either a calendar month ("YYYY-MM") or an
// inclusive From/To date range. When both are supplied, Month wins; this is
// deliberate policy, not an error.
type Period struct {
	Month string
	From  string
	To    string
}

const monthLayout = "2006-01"

// Resolve normalizes the period to an inclusive [from, to] date range.
func (p Period) Resolve() (from, to string, err error) {
	if p.Month != "" {
		first, err := time.Parse(monthLayout, p.Month)
		if err != nil {
			return "", "", ErrInvalidPeriod
		}
		last := first.AddDate(0, 1, -1)
		return first.Format(DateLayout), last.Format(DateLayout), nil
	}

	if p.From == "" || p.To == "" {
		return "", "", ErrInvalidPeriod
	}
	if _, err := ParseDate(p.From); err != nil {
		return "", "", ErrInvalidPeriod
	}
	if _, err := ParseDate(p.To); err != nil {
		return "", "", ErrInvalidPeriod
	}
	if p.From > p.To {
		return "", "", ErrInvalidPeriod
	}
	return p.From, p.To, nil
}

// ComputeStats folds the bookings whose date falls inside [from, to]
// (and matches the sport filter, when given) into totals and per-sport
// breakdowns. Date comparison is lexicographic on the zero-padded strings.
// The by-sport maps carry an entry for every sport, zero when unmatched.
func ComputeStats(bookings []*Booking, from, to string, filter *sport.Sport) Stats {
	stats := Stats{
		BookingsBySport: make(map[sport.Sport]int, len(sport.All())),
		RevenueBySport:  make(map[sport.Sport]float64, len(sport.All())),
	}
	for _, s := range sport.All() {
		stats.BookingsBySport[s] = 0
		stats.RevenueBySport[s] = 0
	}

	for _, b := range bookings {
		if b.Date < from || b.Date > to {
			continue
		}
		if filter != nil && b.Sport != *filter {
			continue
		}
		stats.TotalBookings++
		stats.TotalRevenue += b.Amount
		stats.BookingsBySport[b.Sport]++
		stats.RevenueBySport[b.Sport] += b.Amount
	}

	return stats
}
