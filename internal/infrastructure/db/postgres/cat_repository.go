package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawprint/animals-api/internal/core/domain"
)

// PostgresCatRepository persists cats in the cats table.
type PostgresCatRepository struct {
	pool *pgxpool.Pool
}

func NewCatRepository(pool *pgxpool.Pool) *PostgresCatRepository {
	return &PostgresCatRepository{pool: pool}
}

func (r *PostgresCatRepository) GetAll(ctx context.Context) ([]domain.Cat, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, type, description, habitat FROM cats ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cats: %w", err)
	}
	defer rows.Close()

	var cats []domain.Cat
	for rows.Next() {
		var c domain.Cat
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Description, &c.Habitat); err != nil {
			return nil, fmt.Errorf("scan cat: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cats: %w", err)
	}
	return cats, nil
}

func (r *PostgresCatRepository) GetByID(ctx context.Context, id int64) (*domain.Cat, error) {
	var c domain.Cat
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, type, description, habitat FROM cats WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Type, &c.Description, &c.Habitat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCatNotFound
		}
		return nil, fmt.Errorf("find cat: %w", err)
	}
	return &c, nil
}

func (r *PostgresCatRepository) Create(ctx context.Context, cat domain.Cat) (*domain.Cat, error) {
	var created domain.Cat
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cats (name, type, description, habitat)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, type, description, habitat`,
		cat.Name, cat.Type, cat.Description, cat.Habitat,
	).Scan(&created.ID, &created.Name, &created.Type, &created.Description, &created.Habitat)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("insert cat: %w", err)
	}
	return &created, nil
}

func (r *PostgresCatRepository) Update(ctx context.Context, cat domain.Cat) (*domain.Cat, error) {
	var updated domain.Cat
	err := r.pool.QueryRow(ctx,
		`UPDATE cats SET name = $2, type = $3, description = $4, habitat = $5
		 WHERE id = $1
		 RETURNING id, name, type, description, habitat`,
		cat.ID, cat.Name, cat.Type, cat.Description, cat.Habitat,
	).Scan(&updated.ID, &updated.Name, &updated.Type, &updated.Description, &updated.Habitat)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCatNotFound
		}
		if isConstraintViolation(err) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("update cat: %w", err)
	}
	return &updated, nil
}

func (r *PostgresCatRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCatNotFound
	}
	return nil
}

// isConstraintViolation reports whether err is a NOT NULL (23502) or check
// (23514) constraint failure.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23502" || pgErr.Code == "23514"
}
