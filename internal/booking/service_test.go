package booking_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sportarena/booking-backend/internal/booking"
	"github.com/sportarena/booking-backend/internal/sport"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	bookings []*booking.Booking
}

func (f *fakeRepo) Create(_ context.Context, b *booking.Booking) error {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, booking.ErrNotFound
}

func (f *fakeRepo) ListByDate(_ context.Context, date string, sp *sport.Sport) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range f.bookings {
		if b.Date != date {
			continue
		}
		if sp != nil && b.Sport != *sp {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) ListRange(_ context.Context, from, to string, sp *sport.Sport) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range f.bookings {
		if b.Date < from || b.Date > to {
			continue
		}
		if sp != nil && b.Sport != *sp {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = slices.Delete(f.bookings, i, i+1)
			return nil
		}
	}
	return booking.ErrNotFound
}

func newTestService(repo *fakeRepo) booking.Service {
	return booking.NewService(repo, zap.NewNop(), 60)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a valid booking", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		b, err := svc.Create(ctx, booking.CreateRequest{
			Sport:     sport.Cricket,
			Date:      "2024-01-02",
			StartTime: "10:00",
			EndTime:   "12:00",
			Amount:    1200,
			CreatedBy: "admin@arena.test",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.False(t, b.SpansMidnight)
	})

	t.Run("derives the midnight flag once at create", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		b, err := svc.Create(ctx, booking.CreateRequest{
			Sport:     sport.Gaming,
			Date:      "2024-01-01",
			StartTime: "23:00",
			EndTime:   "01:00",
			Amount:    200,
		})
		require.NoError(t, err)
		assert.True(t, b.SpansMidnight)
	})

	t.Run("rejects an overlapping booking", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Cricket, Date: "2024-01-02", StartTime: "10:00", EndTime: "12:00", Amount: 500,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Cricket, Date: "2024-01-02", StartTime: "11:00", EndTime: "13:00", Amount: 500,
		})
		assert.ErrorIs(t, err, booking.ErrTimeConflict)
	})

	t.Run("rejects a booking under yesterday's overnight bleed", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Cricket, Date: "2024-01-01", StartTime: "23:00", EndTime: "02:00", Amount: 800,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Cricket, Date: "2024-01-02", StartTime: "01:00", EndTime: "03:00", Amount: 500,
		})
		assert.ErrorIs(t, err, booking.ErrTimeConflict)
	})

	t.Run("allows adjacency", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Football, Date: "2024-01-02", StartTime: "10:00", EndTime: "11:00", Amount: 500,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Football, Date: "2024-01-02", StartTime: "11:00", EndTime: "12:00", Amount: 500,
		})
		assert.NoError(t, err)
	})

	t.Run("different sports share the clock freely", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		_, err := svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Football, Date: "2024-01-02", StartTime: "10:00", EndTime: "11:00", Amount: 500,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, booking.CreateRequest{
			Sport: sport.Pickleball, Date: "2024-01-02", StartTime: "10:00", EndTime: "11:00", Amount: 400,
		})
		assert.NoError(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})

		tests := []struct {
			name    string
			req     booking.CreateRequest
			wantErr error
		}{
			{
				name:    "unknown sport",
				req:     booking.CreateRequest{Sport: "Tennis", Date: "2024-01-02", StartTime: "10:00", EndTime: "11:00"},
				wantErr: booking.ErrInvalidSport,
			},
			{
				name:    "bad date",
				req:     booking.CreateRequest{Sport: sport.Cricket, Date: "2024/01/02", StartTime: "10:00", EndTime: "11:00"},
				wantErr: booking.ErrInvalidDate,
			},
			{
				name:    "start equals end",
				req:     booking.CreateRequest{Sport: sport.Cricket, Date: "2024-01-02", StartTime: "10:00", EndTime: "10:00"},
				wantErr: booking.ErrInvalidRange,
			},
			{
				name:    "bad time",
				req:     booking.CreateRequest{Sport: sport.Cricket, Date: "2024-01-02", StartTime: "10am", EndTime: "11:00"},
				wantErr: booking.ErrInvalidRange,
			},
			{
				name:    "negative amount",
				req:     booking.CreateRequest{Sport: sport.Cricket, Date: "2024-01-02", StartTime: "10:00", EndTime: "11:00", Amount: -5},
				wantErr: booking.ErrInvalidAmount,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Create(ctx, tt.req)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestServiceProjectDay(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Create(ctx, booking.CreateRequest{
		Sport: sport.Cricket, Date: "2024-01-01", StartTime: "23:00", EndTime: "01:00", Amount: 700,
	})
	require.NoError(t, err)

	t.Run("marks only the bleed-through slot on the next day", func(t *testing.T) {
		seq, err := svc.ProjectDay(ctx, "2024-01-02", ptr(sport.Cricket), 0)
		require.NoError(t, err)

		slots := slices.Collect(seq)
		require.Len(t, slots, 24)
		assert.Equal(t, []string{"00:00"}, occupiedTimes(slots))
	})

	t.Run("marks only the evening slot on the start day", func(t *testing.T) {
		seq, err := svc.ProjectDay(ctx, "2024-01-01", ptr(sport.Cricket), 0)
		require.NoError(t, err)

		assert.Equal(t, []string{"23:00"}, occupiedTimes(slices.Collect(seq)))
	})

	t.Run("other sports see a free day", func(t *testing.T) {
		seq, err := svc.ProjectDay(ctx, "2024-01-02", ptr(sport.Football), 0)
		require.NoError(t, err)

		assert.Empty(t, occupiedTimes(slices.Collect(seq)))
	})

	t.Run("explicit picker step", func(t *testing.T) {
		seq, err := svc.ProjectDay(ctx, "2024-01-02", ptr(sport.Cricket), 30)
		require.NoError(t, err)

		slots := slices.Collect(seq)
		require.Len(t, slots, 48)
		assert.Equal(t, []string{"00:00", "00:30"}, occupiedTimes(slots))
	})

	t.Run("invalid step", func(t *testing.T) {
		_, err := svc.ProjectDay(ctx, "2024-01-02", nil, 7)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.ProjectDay(ctx, "tomorrow", nil, 0)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	seed := []booking.CreateRequest{
		{Sport: sport.Football, Date: "2024-01-05", StartTime: "10:00", EndTime: "11:00", Amount: 500},
		{Sport: sport.Football, Date: "2024-01-12", StartTime: "10:00", EndTime: "11:00", Amount: 700},
		{Sport: sport.Football, Date: "2024-01-20", StartTime: "10:00", EndTime: "11:00", Amount: 300},
		{Sport: sport.Cricket, Date: "2024-01-20", StartTime: "14:00", EndTime: "15:00", Amount: 1000},
	}
	for _, req := range seed {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	t.Run("filtered month report", func(t *testing.T) {
		stats, err := svc.Stats(ctx, booking.Period{Month: "2024-01"}, ptr(sport.Football))
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalBookings)
		assert.Equal(t, 1500.0, stats.TotalRevenue)
		assert.Equal(t, 3, stats.BookingsBySport[sport.Football])
		assert.Equal(t, 0, stats.BookingsBySport[sport.Cricket])
	})

	t.Run("unfiltered month report", func(t *testing.T) {
		stats, err := svc.Stats(ctx, booking.Period{Month: "2024-01"}, nil)
		require.NoError(t, err)

		assert.Equal(t, 4, stats.TotalBookings)
		assert.Equal(t, 2500.0, stats.TotalRevenue)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := svc.Stats(ctx, booking.Period{Month: "January"}, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})
}

func TestServiceListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newTestService(repo)

	created, err := svc.Create(ctx, booking.CreateRequest{
		Sport: sport.Gaming, Date: "2024-01-02", StartTime: "18:00", EndTime: "20:00", Amount: 200,
	})
	require.NoError(t, err)

	t.Run("list requires a date", func(t *testing.T) {
		_, err := svc.List(ctx, booking.Filter{})
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("list by date and sport", func(t *testing.T) {
		got, err := svc.List(ctx, booking.Filter{Date: "2024-01-02", Sport: ptr(sport.Gaming)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, created.ID, got[0].ID)
	})

	t.Run("delete then not found", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err := svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, booking.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, created.ID), booking.ErrNotFound)
	})
}

func ptr(s sport.Sport) *sport.Sport {
	return &s
}
