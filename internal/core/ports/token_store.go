package ports

import (
	"context"
	"time"
)

// TokenStore tracks issued bearer tokens by their token id (jti) so they can
// be verified and revoked server side.
type TokenStore interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string) error
}
