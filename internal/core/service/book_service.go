package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

// BookService manages the book side of the catalog. Every write resolves the
// referenced author so a book can never point at a missing one.
type BookService struct {
	books   ports.BookRepository
	authors ports.AuthorRepository
	logger  zerolog.Logger
}

func NewBookService(books ports.BookRepository, authors ports.AuthorRepository, logger zerolog.Logger) *BookService {
	return &BookService{books: books, authors: authors, logger: logger}
}

func (s *BookService) GetAll(ctx context.Context) ([]domain.Book, error) {
	return s.books.FindAll(ctx)
}

func (s *BookService) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	return s.books.FindByID(ctx, id)
}

// GetByAuthorID lists the author's books. An unknown author yields an empty
// list, not an error.
func (s *BookService) GetByAuthorID(ctx context.Context, authorID string) ([]domain.Book, error) {
	return s.books.FindByAuthorID(ctx, authorID)
}

func (s *BookService) Create(ctx context.Context, input ports.BookInput) (*domain.Book, error) {
	author, err := s.authors.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}

	created, err := s.books.Create(ctx, &domain.Book{
		Title:       input.Title,
		ISBN:        input.ISBN,
		Price:       input.Price,
		Description: input.Description,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, err
	}
	s.logger.Info().Str("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

func (s *BookService) Update(ctx context.Context, id string, input ports.BookInput) (*domain.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if book.AuthorID != input.AuthorID {
		author, err := s.authors.FindByID(ctx, input.AuthorID)
		if err != nil {
			return nil, err
		}
		book.AuthorID = author.ID
		book.AuthorName = author.Name
	}

	book.Title = input.Title
	book.ISBN = input.ISBN
	book.Price = input.Price
	book.Description = input.Description

	updated, err := s.books.Update(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Str("book_id", id).Msg("failed to update book")
		return nil, err
	}
	s.logger.Info().Str("book_id", id).Msg("book updated")
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if _, err := s.books.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}

func (s *BookService) DeleteAll(ctx context.Context) error {
	s.logger.Info().Msg("deleting all books")
	return s.books.DeleteAll(ctx)
}
