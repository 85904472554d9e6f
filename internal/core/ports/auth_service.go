package ports

import (
	"context"

	"github.com/pawprint/animals-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the token identified by tokenID.
	Logout(ctx context.Context, tokenID string) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
