package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportarena/booking-backend/internal/sport"
)

type Repository interface {
	// Create inserts the booking and fills in the repository-assigned fields.
	// The bookings table carries a unique index over (sport, date, start_time),
	// so two racing creates for the same slot cannot both commit even though
	// the conflict check itself runs before the insert; the loser surfaces as
	// ErrTimeConflict.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// ListByDate returns the bookings whose start date equals date,
	// optionally restricted to one sport.
	ListByDate(ctx context.Context, date string, sp *sport.Sport) ([]*Booking, error)
	// ListRange returns the bookings whose start date falls within the
	// inclusive [from, to] range, optionally restricted to one sport.
	ListRange(ctx context.Context, from, to string, sp *sport.Sport) ([]*Booking, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "id, sport, date, start_time, end_time, spans_midnight, amount, created_by, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("sport", "date", "start_time", "end_time", "spans_midnight", "amount", "created_by").
		Values(b.Sport, b.Date, b.StartTime, b.EndTime, b.SpansMidnight, b.Amount, b.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string, sp *sport.Sport) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC")

	if sp != nil {
		query = query.Where(squirrel.Eq{"sport": *sp})
	}

	return r.queryMany(ctx, query)
}

func (r *pgxRepository) ListRange(ctx context.Context, from, to string, sp *sport.Sport) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC", "start_time ASC")

	if sp != nil {
		query = query.Where(squirrel.Eq{"sport": *sp})
	}

	return r.queryMany(ctx, query)
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryMany(ctx context.Context, query squirrel.SelectBuilder) ([]*Booking, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b    Booking
		date time.Time
	)
	if err := row.Scan(
		&b.ID, &b.Sport, &date, &b.StartTime, &b.EndTime,
		&b.SpansMidnight, &b.Amount, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Date = date.Format(DateLayout)
	return &b, nil
}
