package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/danielstevenson70/ITGHM-api/internal/auth/domain UserRepository

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists with the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	BlacklistToken(ctx context.Context, bt *BlacklistedToken) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}
