// Package seed populates default accounts and sample catalog data on first
// run. Seeding is skipped entirely as soon as any user exists.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

// Run seeds one ADMIN account, one USER account, two authors, and three books.
func Run(ctx context.Context, users ports.UserRepository, authors ports.AuthorRepository, books ports.BookRepository, log zerolog.Logger) error {
	n, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		log.Debug().Int64("users", n).Msg("seed skipped, data already present")
		return nil
	}

	if err := seedUsers(ctx, users, log); err != nil {
		return err
	}
	return seedCatalog(ctx, authors, books, log)
}

func seedUsers(ctx context.Context, users ports.UserRepository, log zerolog.Logger) error {
	log.Info().Msg("loading users")

	accounts := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{"admin", "admin@example.com", "admin123", domain.RoleAdmin},
		{"user", "user@example.com", "user123", domain.RoleUser},
	}

	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		now := time.Now().UTC()
		if _, err := users.Create(ctx, &domain.User{
			Username:     a.username,
			Email:        a.email,
			PasswordHash: string(hash),
			Role:         a.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("seed: create user %s: %w", a.username, err)
		}
	}

	log.Info().Int("count", len(accounts)).Msg("users loaded")
	return nil
}

func seedCatalog(ctx context.Context, authors ports.AuthorRepository, books ports.BookRepository, log zerolog.Logger) error {
	log.Info().Msg("loading authors and books")

	rowling, err := authors.Create(ctx, &domain.Author{
		Name:      "J.K. Rowling",
		Biography: "British author known for writing the Harry Potter series",
	})
	if err != nil {
		return fmt.Errorf("seed: create author: %w", err)
	}

	orwell, err := authors.Create(ctx, &domain.Author{
		Name:      "George Orwell",
		Biography: "English novelist, essayist, and critic",
	})
	if err != nil {
		return fmt.Errorf("seed: create author: %w", err)
	}

	catalog := []domain.Book{
		{
			Title:       "Harry Potter and the Philosopher's Stone",
			ISBN:        "9780747532743",
			Price:       19.99,
			Description: "The first novel in the Harry Potter series",
			AuthorID:    rowling.ID,
			AuthorName:  rowling.Name,
		},
		{
			Title:       "Harry Potter and the Chamber of Secrets",
			ISBN:        "9780747538486",
			Price:       21.99,
			Description: "The second novel in the Harry Potter series",
			AuthorID:    rowling.ID,
			AuthorName:  rowling.Name,
		},
		{
			Title:       "1984",
			ISBN:        "9780451524935",
			Price:       15.99,
			Description: "A dystopian novel about totalitarianism",
			AuthorID:    orwell.ID,
			AuthorName:  orwell.Name,
		},
	}

	for i := range catalog {
		if _, err := books.Create(ctx, &catalog[i]); err != nil {
			return fmt.Errorf("seed: create book %q: %w", catalog[i].Title, err)
		}
	}

	log.Info().Int("authors", 2).Int("books", len(catalog)).Msg("catalog loaded")
	return nil
}
