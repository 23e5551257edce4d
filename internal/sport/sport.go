package sport

import "fmt"

// Sport identifies one of the facility's bookable activities.
type Sport string

const (
	Cricket    Sport = "Cricket"
	Football   Sport = "Football"
	Pickleball Sport = "Pickleball"
	Gaming     Sport = "Gaming"
)

// All returns every sport in a stable order. Aggregates and availability
// reports iterate this so that every sport is always present in the output.
func All() []Sport {
	return []Sport{Cricket, Football, Pickleball, Gaming}
}

// Parse validates a raw string against the sport enumeration.
func Parse(s string) (Sport, error) {
	switch Sport(s) {
	case Cricket, Football, Pickleball, Gaming:
		return Sport(s), nil
	}
	return "", fmt.Errorf("unknown sport %q", s)
}

// DefaultRatePerHour is the static fallback hourly rate used when the price
// table has no entry for the sport or cannot be reached.
func DefaultRatePerHour(s Sport) float64 {
	switch s {
	case Cricket:
		return 600
	case Football:
		return 600
	case Pickleball:
		return 400
	case Gaming:
		return 100
	}
	return 0
}
