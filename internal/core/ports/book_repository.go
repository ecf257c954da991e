package ports

import (
	"context"

	"github.com/misranrifat/book-store/internal/core/domain"
)

// BookRepository defines the persistence operations for books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]domain.Book, error)
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthorID(ctx context.Context, authorID string) error
	DeleteAll(ctx context.Context) error
}
