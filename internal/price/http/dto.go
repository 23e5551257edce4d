package http

import (
	"time"

	"github.com/sportarena/booking-backend/internal/price"
)

type CreatePriceBody struct {
	Sport string  `json:"sport" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

type UpdatePriceBody struct {
	Price float64 `json:"price" binding:"required"`
}

type PriceResponse struct {
	ID        string    `json:"id"`
	Sport     string    `json:"sport"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPriceResponse(p *price.Price) PriceResponse {
	return PriceResponse{
		ID:        p.ID,
		Sport:     string(p.Sport),
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// RateResponse carries the resolved hourly rate, including the fallback case
// where the price table has no entry for the sport.
type RateResponse struct {
	Sport       string  `json:"sport"`
	RatePerHour float64 `json:"rate_per_hour"`
}
