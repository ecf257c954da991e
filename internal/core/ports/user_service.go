package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// UserService exposes the administrative user operations.
type UserService interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
