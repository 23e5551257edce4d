package price

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportarena/booking-backend/internal/sport"
)

type Repository interface {
	Create(ctx context.Context, p *Price) error
	GetByID(ctx context.Context, id string) (*Price, error)
	GetBySport(ctx context.Context, sp sport.Sport) (*Price, error)
	List(ctx context.Context) ([]*Price, error)
	Update(ctx context.Context, p *Price) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, p *Price) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.prices").
		Columns("sport", "price").
		Values(p.Sport, p.Price).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create price query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSportConflict
		}
		return fmt.Errorf("create price failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Price, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetBySport(ctx context.Context, sp sport.Sport) (*Price, error) {
	return r.getOne(ctx, squirrel.Eq{"sport": sp})
}

func (r *pgxRepository) getOne(ctx context.Context, where squirrel.Eq) (*Price, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "sport", "price", "created_at", "updated_at").
		From("public.prices").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get price query failed: %w", err)
	}

	var p Price
	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&p.ID, &p.Sport, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get price failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Price, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "sport", "price", "created_at", "updated_at").
		From("public.prices").
		OrderBy("sport ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list prices query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prices failed: %w", err)
	}
	defer rows.Close()

	var prices []*Price
	for rows.Next() {
		var p Price
		if err := rows.Scan(&p.ID, &p.Sport, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan price failed: %w", err)
		}
		prices = append(prices, &p)
	}
	return prices, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, p *Price) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.prices").
		Set("price", p.Price).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update price query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update price failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.prices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete price query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete price failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
