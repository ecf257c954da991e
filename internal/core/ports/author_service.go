package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// AuthorInput carries the writable author fields.
type AuthorInput struct {
	Name      string
	Biography string
}

type AuthorService interface {
	GetAll(ctx context.Context) ([]domain.Author, error)
	GetByID(ctx context.Context, id string) (*domain.Author, error)
	Create(ctx context.Context, input AuthorInput) (*domain.Author, error)
	Update(ctx context.Context, id string, input AuthorInput) (*domain.Author, error)
	// Delete removes the author and every book it owns.
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
