// Package timeslot implements the facility's fixed time grid and the
// wall-clock interval arithmetic shared by the conflict resolver and the
// availability projector. All intervals are half-open [start, end) in
// minutes since midnight; an interval whose end is not after its start is
// interpreted as crossing midnight and split into its two same-day pieces
// before any overlap test.
package timeslot

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the wall-clock day in minutes.
const MinutesPerDay = 24 * 60

const (
	// DefaultGridStep is the slot step used by the day occupancy view.
	DefaultGridStep = 60
	// DefaultPickerStep is the finer step offered by booking-creation pickers.
	DefaultPickerStep = 30
)

// ToMinutes converts a "HH:MM" 24-hour clock value to minutes since midnight.
func ToMinutes(t string) (int, error) {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", t)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", t)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", t)
	}
	return h*60 + m, nil
}

// FormatMinutes is the inverse of ToMinutes for values in [0, MinutesPerDay).
func FormatMinutes(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Interval is a half-open [Start, End) span in minutes since midnight of a
// reference day. End may exceed MinutesPerDay after an overnight split.
type Interval struct {
	Start int
	End   int
}

// SplitOvernight expands a wall-clock interval into its same-day pieces.
// A non-overnight interval (end > start) is returned as-is. An overnight
// interval (end <= start) becomes [start, 24:00) plus [00:00, end) when the
// end piece is non-empty.
func SplitOvernight(start, end int) []Interval {
	if end > start {
		return []Interval{{Start: start, End: end}}
	}
	pieces := []Interval{{Start: start, End: MinutesPerDay}}
	if end > 0 {
		pieces = append(pieces, Interval{Start: 0, End: end})
	}
	return pieces
}

// IntervalsOverlap reports whether two same-day wall-clock intervals share
// any point. Each interval is first split at midnight when overnight.
// Adjacency (aEnd == bStart) is not an overlap.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	for _, a := range SplitOvernight(aStart, aEnd) {
		for _, b := range SplitOvernight(bStart, bEnd) {
			if a.Start < b.End && b.Start < a.End {
				return true
			}
		}
	}
	return false
}

// Grid is the fixed slot grid for one day at a given step.
type Grid struct {
	step int
}

// NewGrid creates a grid with the given step in minutes. The step must be
// positive and divide the day evenly so the grid tiles the full 24 hours.
func NewGrid(stepMinutes int) (Grid, error) {
	if stepMinutes <= 0 || MinutesPerDay%stepMinutes != 0 {
		return Grid{}, fmt.Errorf("grid step %d does not divide a day evenly", stepMinutes)
	}
	return Grid{step: stepMinutes}, nil
}

// Step returns the grid step in minutes.
func (g Grid) Step() int {
	return g.step
}

// Size returns the number of slots in one day.
func (g Grid) Size() int {
	return MinutesPerDay / g.step
}

// Times yields the grid's slot labels in chronological order starting at
// 00:00. The sequence is finite and restartable.
func (g Grid) Times() iter.Seq[string] {
	return func(yield func(string) bool) {
		for m := 0; m < MinutesPerDay; m += g.step {
			if !yield(FormatMinutes(m)) {
				return
			}
		}
	}
}

// Minutes yields the grid's slot offsets in minutes since midnight.
func (g Grid) Minutes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for m := 0; m < MinutesPerDay; m += g.step {
			if !yield(m) {
				return
			}
		}
	}
}

// To12Hour renders a 24-hour "HH:MM" value as a compact 12-hour label, e.g.
// "00:00" -> "12am", "09:30" -> "9:30am", "17:00" -> "5pm". The mapping is
// lossless at minute granularity: distinct inputs yield distinct labels.
func To12Hour(t string) (string, error) {
	m, err := ToMinutes(t)
	if err != nil {
		return "", err
	}
	h := m / 60
	mm := m % 60
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	if mm == 0 {
		return fmt.Sprintf("%d%s", h, suffix), nil
	}
	return fmt.Sprintf("%d:%02d%s", h, mm, suffix), nil
}
