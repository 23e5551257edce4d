package price

import (
	"context"
	"math"
	"sync"

	"github.com/sportarena/booking-backend/internal/sport"
	"go.uber.org/zap"
)

type CreateRequest struct {
	Sport sport.Sport
	Price float64
}

type UpdateRequest struct {
	Price float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Price, error)
	GetByID(ctx context.Context, id string) (*Price, error)
	GetBySport(ctx context.Context, sp sport.Sport) (*Price, error)
	List(ctx context.Context) ([]*Price, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Price, error)
	Delete(ctx context.Context, id string) error

	// GetRatePerHour resolves the hourly rate for a sport, consulting the
	// in-process cache first. When the price table has no entry, returns an
	// invalid value, or cannot be reached, the static default for the sport
	// is used and cached exactly like a real rate: a transient failure
	// sticks as the fallback until ClearCache. GetRatePerHour never fails.
	GetRatePerHour(ctx context.Context, sp sport.Sport) float64

	// ClearCache drops every cached rate. Write paths call it after any
	// change to the price table; without that, stale rates persist for the
	// process lifetime.
	ClearCache()
}

// rateCache is the explicit, service-owned replacement for process-global
// rate state. Concurrent fills are idempotent; a read racing an invalidation
// may observe a stale value, which is acceptable because the cache is a
// performance boundary, not a correctness one.
type rateCache struct {
	mu    sync.RWMutex
	rates map[sport.Sport]float64
}

func (c *rateCache) get(sp sport.Sport) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rate, ok := c.rates[sp]
	return rate, ok
}

func (c *rateCache) set(sp sport.Sport, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates[sp] = rate
}

func (c *rateCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.rates)
}

type service struct {
	repo  Repository
	log   *zap.Logger
	cache *rateCache
}

func NewService(repo Repository, log *zap.Logger) Service {
	return &service{
		repo:  repo,
		log:   log,
		cache: &rateCache{rates: make(map[sport.Sport]float64)},
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Price, error) {
	if _, err := sport.Parse(string(req.Sport)); err != nil {
		return nil, ErrInvalidSport
	}
	if req.Price <= 0 || !isFinite(req.Price) {
		return nil, ErrInvalidPrice
	}

	p := &Price{
		Sport: req.Sport,
		Price: req.Price,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Price, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySport(ctx context.Context, sp sport.Sport) (*Price, error) {
	if _, err := sport.Parse(string(sp)); err != nil {
		return nil, ErrInvalidSport
	}
	return s.repo.GetBySport(ctx, sp)
}

func (s *service) List(ctx context.Context) ([]*Price, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Price, error) {
	if req.Price <= 0 || !isFinite(req.Price) {
		return nil, ErrInvalidPrice
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Price = req.Price

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetRatePerHour(ctx context.Context, sp sport.Sport) float64 {
	if rate, ok := s.cache.get(sp); ok {
		return rate
	}

	p, err := s.repo.GetBySport(ctx, sp)
	if err != nil || !isFinite(p.Price) || p.Price <= 0 {
		fallback := sport.DefaultRatePerHour(sp)
		if err != nil {
			s.log.Warn("rate lookup failed, using static default",
				zap.String("sport", string(sp)),
				zap.Float64("fallback", fallback),
				zap.Error(err),
			)
		}
		s.cache.set(sp, fallback)
		return fallback
	}

	s.cache.set(sp, p.Price)
	return p.Price
}

func (s *service) ClearCache() {
	s.cache.clear()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
