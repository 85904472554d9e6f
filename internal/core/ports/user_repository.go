package ports

import (
	"context"

	"github.com/pawprint/animals-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create inserts the account and returns the new id only; callers
	// re-fetch the full row with FindByID.
	Create(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
