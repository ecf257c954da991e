package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// UserRepository defines the persistence operations for identity records.
// Create must enforce username and email uniqueness and surface violations as
// domain.ErrUsernameTaken / domain.ErrEmailTaken, closing the race between the
// service-level existence checks and the insert.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
