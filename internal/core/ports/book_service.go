package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// BookInput carries the writable book fields. AuthorID must reference an
// existing author.
type BookInput struct {
	Title       string
	ISBN        string
	Price       float64
	Description string
	AuthorID    string
}

type BookService interface {
	GetAll(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	GetByAuthorID(ctx context.Context, authorID string) ([]domain.Book, error)
	Create(ctx context.Context, input BookInput) (*domain.Book, error)
	Update(ctx context.Context, id string, input BookInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
