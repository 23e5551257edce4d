package booking

import (
	"context"
	"errors"
	"iter"

	"github.com/sportarena/booking-backend/internal/sport"
	"github.com/sportarena/booking-backend/internal/timeslot"
	"go.uber.org/zap"
)

type CreateRequest struct {
	Sport     sport.Sport
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Amount    float64
	CreatedBy string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Delete(ctx context.Context, id string) error

	// ProjectDay returns the occupancy of every slot on date for the grid
	// step, merging overnight bleed-through from the previous day.
	// stepMinutes <= 0 selects the service's default grid step.
	ProjectDay(ctx context.Context, date string, sp *sport.Sport, stepMinutes int) (iter.Seq[TimeSlot], error)

	// Stats aggregates bookings over the period, optionally filtered by sport.
	Stats(ctx context.Context, period Period, sp *sport.Sport) (Stats, error)
}

type service struct {
	repo     Repository
	log      *zap.Logger
	gridStep int
}

func NewService(repo Repository, log *zap.Logger, gridStepMinutes int) Service {
	if gridStepMinutes <= 0 {
		gridStepMinutes = timeslot.DefaultGridStep
	}
	return &service{
		repo:     repo,
		log:      log,
		gridStep: gridStepMinutes,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if _, err := sport.Parse(string(req.Sport)); err != nil {
		return nil, ErrInvalidSport
	}
	if _, err := ParseDate(req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	startMin, err := timeslot.ToMinutes(req.StartTime)
	if err != nil {
		return nil, ErrInvalidRange
	}
	endMin, err := timeslot.ToMinutes(req.EndTime)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if startMin == endMin {
		return nil, ErrInvalidRange
	}
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	existing, err := s.fetchDayAndPrev(ctx, req.Date, &req.Sport)
	if err != nil {
		return nil, err
	}

	conflict, err := CheckConflict(req.Sport, req.Date, req.StartTime, req.EndTime, existing)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		Sport:         req.Sport,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SpansMidnight: endMin < startMin,
		Amount:        req.Amount,
		CreatedBy:     req.CreatedBy,
	}

	// The unique index on (sport, date, start_time) closes the window
	// between the check above and this insert.
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	if filter.Date == "" {
		return nil, ErrInvalidDate
	}
	if _, err := ParseDate(filter.Date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.repo.ListByDate(ctx, filter.Date, filter.Sport)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ProjectDay(ctx context.Context, date string, sp *sport.Sport, stepMinutes int) (iter.Seq[TimeSlot], error) {
	if stepMinutes <= 0 {
		stepMinutes = s.gridStep
	}
	grid, err := timeslot.NewGrid(stepMinutes)
	if err != nil {
		return nil, ErrInvalidRange
	}

	prevDate, err := PrevDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	sameDay, err := s.repo.ListByDate(ctx, date, sp)
	if err != nil {
		return nil, err
	}
	prevDay, err := s.repo.ListByDate(ctx, prevDate, sp)
	if err != nil {
		return nil, err
	}

	slots, err := ProjectOccupancy(date, grid, sameDay, prevDay)
	if err != nil {
		if errors.Is(err, ErrIntegrity) {
			// Repository-level atomicity was violated; this needs operator
			// attention, not a silently picked winner.
			s.log.Error("booking integrity violation",
				zap.String("date", date),
				zap.Error(err),
			)
		}
		return nil, err
	}
	return slots, nil
}

func (s *service) Stats(ctx context.Context, period Period, sp *sport.Sport) (Stats, error) {
	from, to, err := period.Resolve()
	if err != nil {
		return Stats{}, err
	}

	bookings, err := s.repo.ListRange(ctx, from, to, sp)
	if err != nil {
		return Stats{}, err
	}

	return ComputeStats(bookings, from, to, sp), nil
}

func (s *service) fetchDayAndPrev(ctx context.Context, date string, sp *sport.Sport) ([]*Booking, error) {
	prevDate, err := PrevDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	sameDay, err := s.repo.ListByDate(ctx, date, sp)
	if err != nil {
		return nil, err
	}
	prevDay, err := s.repo.ListByDate(ctx, prevDate, sp)
	if err != nil {
		return nil, err
	}
	return append(sameDay, prevDay...), nil
}
