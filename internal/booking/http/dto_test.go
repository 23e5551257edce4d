package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bookingHttp "github.com/sportarena/booking-backend/internal/booking/http"
)

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "09:30", want: "09:30"},
		{in: "9:30", want: "09:30"},
		{in: "930", want: "09:30"},
		{in: "1700", want: "17:00"},
		{in: "0", want: "00:00"},
		{in: "9", want: "00:09"},
		{in: " 10:00 ", want: "10:00"},
		{in: "10:5", want: "10:05"},
		{in: "", want: ""},
		// Unrecognizable values pass through for downstream validation.
		{in: "10am", want: "10am"},
		{in: "99999", want: "99999"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, bookingHttp.NormalizeClock(tt.in))
		})
	}
}
