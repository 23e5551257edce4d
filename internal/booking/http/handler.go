package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportarena/booking-backend/internal/auth"
	"github.com/sportarena/booking-backend/internal/booking"
	"github.com/sportarena/booking-backend/internal/pkg/request"
	"github.com/sportarena/booking-backend/internal/pkg/response"
	"github.com/sportarena/booking-backend/internal/sport"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// sportFilter parses the optional ?sport= query parameter. An empty value or
// "all" means no filter.
func sportFilter(c *gin.Context) (*sport.Sport, bool) {
	raw := c.Query("sport")
	if raw == "" || raw == "all" {
		return nil, true
	}
	sp, err := sport.Parse(raw)
	if err != nil {
		response.Error(c, booking.ErrInvalidSport)
		return nil, false
	}
	return &sp, true
}

func (h *Handler) List(c *gin.Context) {
	sp, ok := sportFilter(c)
	if !ok {
		return
	}

	bookings, err := h.service.List(c.Request.Context(), booking.Filter{
		Date:  c.Query("date"),
		Sport: sp,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	createdBy := body.CreatedBy
	if createdBy == "" {
		createdBy = auth.GetAdminEmail(c)
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		Sport:     sport.Sport(body.Sport),
		Date:      body.Date,
		StartTime: NormalizeClock(body.StartTime),
		EndTime:   NormalizeClock(body.EndTime),
		Amount:    body.Amount,
		CreatedBy: createdBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
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
	c.Status(http.StatusNoContent)
}

func (h *Handler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, booking.ErrInvalidDate)
		return
	}

	sp, ok := sportFilter(c)
	if !ok {
		return
	}

	step := 0
	if v := c.Query("step"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step"})
			return
		}
		step = parsed
	}

	slots, err := h.service.ProjectDay(c.Request.Context(), date, sp, step)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := AvailabilityResponse{
		Date:        date,
		StepMinutes: step,
		Slots:       make([]TimeSlotResponse, 0),
	}
	if sp != nil {
		resp.Sport = string(*sp)
	}
	for s := range slots {
		resp.Slots = append(resp.Slots, NewTimeSlotResponse(s))
	}
	if resp.StepMinutes == 0 && len(resp.Slots) > 0 {
		resp.StepMinutes = timeslotStep(len(resp.Slots))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Report(c *gin.Context) {
	sp, ok := sportFilter(c)
	if !ok {
		return
	}

	period := booking.Period{
		Month: c.Query("month"),
		From:  c.Query("from"),
		To:    c.Query("to"),
	}

	stats, err := h.service.Stats(c.Request.Context(), period, sp)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStatsResponse(stats))
}

// timeslotStep derives the effective step from the slot count when the
// caller relied on the configured default.
func timeslotStep(slots int) int {
	return 24 * 60 / slots
}
