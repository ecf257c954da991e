package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// AuthorRepository defines the persistence operations for authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) (*domain.Author, error)
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	FindAll(ctx context.Context) ([]domain.Author, error)
	Update(ctx context.Context, author *domain.Author) (*domain.Author, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
