package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// LoginResult bundles the signed token with the identity's public profile.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService implements login and registration.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
}
