package ports

import (
	"context"

	"github.com/pawprint/animals-api/internal/core/domain"
)

// CreateCatInput carries the data needed to create a new cat. All fields are
// required by the cats table's NOT NULL constraints.
type CreateCatInput struct {
	Name        string
	Type        string
	Description string
	Habitat     string
}

// UpdateCatInput is a partial update. A nil field means "keep the current
// value"; a non-nil field is applied even when it points at an empty string.
type UpdateCatInput struct {
	Name        *string
	Type        *string
	Description *string
	Habitat     *string
}

// CatService defines use-case operations for cats.
type CatService interface {
	GetAll(ctx context.Context) ([]domain.Cat, error)
	GetByID(ctx context.Context, id int64) (*domain.Cat, error)
	Create(ctx context.Context, input CreateCatInput) (*domain.Cat, error)
	Update(ctx context.Context, id int64, input UpdateCatInput) (*domain.Cat, error)
	Delete(ctx context.Context, id int64) error
}
