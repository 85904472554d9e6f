package ports

import (
	"context"

	"github.com/pawprint/animals-api/internal/core/domain"
)

// CatRepository defines persistence operations for cats.
type CatRepository interface {
	// GetAll returns every cat ordered by id.
	GetAll(ctx context.Context) ([]domain.Cat, error)
	GetByID(ctx context.Context, id int64) (*domain.Cat, error)
	// Create inserts all four mutable fields and returns the stored row,
	// including the database-assigned id.
	Create(ctx context.Context, cat domain.Cat) (*domain.Cat, error)
	// Update writes all four mutable fields of cat unconditionally and
	// returns the stored row. Fails with domain.ErrCatNotFound when the
	// row no longer exists.
	Update(ctx context.Context, cat domain.Cat) (*domain.Cat, error)
	Delete(ctx context.Context, id int64) error
}
