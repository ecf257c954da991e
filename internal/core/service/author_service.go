package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

// AuthorService manages the author side of the catalog. Authors own their
// books, so deletion cascades through the book repository.
type AuthorService struct {
	authors ports.AuthorRepository
	books   ports.BookRepository
	logger  zerolog.Logger
}

func NewAuthorService(authors ports.AuthorRepository, books ports.BookRepository, logger zerolog.Logger) *AuthorService {
	return &AuthorService{authors: authors, books: books, logger: logger}
}

func (s *AuthorService) GetAll(ctx context.Context) ([]domain.Author, error) {
	return s.authors.FindAll(ctx)
}

func (s *AuthorService) GetByID(ctx context.Context, id string) (*domain.Author, error) {
	return s.authors.FindByID(ctx, id)
}

func (s *AuthorService) Create(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
	created, err := s.authors.Create(ctx, &domain.Author{
		Name:      input.Name,
		Biography: input.Biography,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create author")
		return nil, err
	}
	s.logger.Info().Str("author_id", created.ID).Str("name", created.Name).Msg("author created")
	return created, nil
}

func (s *AuthorService) Update(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author.Name = input.Name
	author.Biography = input.Biography

	updated, err := s.authors.Update(ctx, author)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", id).Msg("failed to update author")
		return nil, err
	}
	s.logger.Info().Str("author_id", id).Msg("author updated")
	return updated, nil
}

// Delete removes the author's books first, then the author. There is no
// cross-collection transaction here; a crash between the two steps leaves no
// orphaned books, only a childless author that a retry cleans up.
func (s *AuthorService) Delete(ctx context.Context, id string) error {
	if _, err := s.authors.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.books.DeleteByAuthorID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("author_id", id).Msg("failed to cascade book deletion")
		return err
	}
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("author_id", id).Msg("author deleted with books")
	return nil
}

func (s *AuthorService) DeleteAll(ctx context.Context) error {
	s.logger.Info().Msg("deleting all authors")
	if err := s.books.DeleteAll(ctx); err != nil {
		return err
	}
	return s.authors.DeleteAll(ctx)
}
