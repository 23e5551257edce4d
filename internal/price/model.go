package price

import (
	"net/http"
	"time"

	"github.com/sportarena/booking-backend/internal/pkg/apperror"
	"github.com/sportarena/booking-backend/internal/sport"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, apperror.KindNotFound, "price not found")
	ErrInvalidSport  = apperror.New(http.StatusBadRequest, apperror.KindInvalidInput, "unknown sport")
	ErrInvalidPrice  = apperror.New(http.StatusBadRequest, apperror.KindInvalidInput, "price must be positive")
	ErrSportConflict = apperror.New(http.StatusConflict, apperror.KindConflictDetected, "price for sport already exists")
)

// Price is the authoritative hourly rate for one sport.
type Price struct {
	ID        string
	Sport     sport.Sport
	Price     float64 // per hour
	CreatedAt time.Time
	UpdatedAt time.Time
}
