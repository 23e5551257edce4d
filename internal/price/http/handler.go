package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportarena/booking-backend/internal/pkg/request"
	"github.com/sportarena/booking-backend/internal/pkg/response"
	"github.com/sportarena/booking-backend/internal/price"
	"github.com/sportarena/booking-backend/internal/sport"
)

type Handler struct {
	service price.Service
}

func NewHandler(service price.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	prices, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PriceResponse, len(prices))
	for i, p := range prices {
		items[i] = NewPriceResponse(p)
	}
	c.JSON(http.StatusOK, items)
}

// GetBySport resolves the effective hourly rate for a sport. Unlike GetByID
// this never 404s: when the table has no row the static default applies.
func (h *Handler) GetBySport(c *gin.Context) {
	sp, err := sport.Parse(c.Param("sport"))
	if err != nil {
		response.Error(c, price.ErrInvalidSport)
		return
	}

	rate := h.service.GetRatePerHour(c.Request.Context(), sp)
	c.JSON(http.StatusOK, RateResponse{
		Sport:       string(sp),
		RatePerHour: rate,
	})
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPriceResponse(p))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePriceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), price.CreateRequest{
		Sport: sport.Sport(body.Sport),
		Price: body.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// Stale cached rates must not outlive a write to the price table.
	h.service.ClearCache()
	c.JSON(http.StatusCreated, NewPriceResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePriceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(c.Request.Context(), req.ID, price.UpdateRequest{Price: body.Price})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.service.ClearCache()
	c.JSON(http.StatusOK, NewPriceResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	h.service.ClearCache()
	c.Status(http.StatusNoContent)
}
