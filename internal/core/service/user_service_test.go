package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/misranrifat/book-store/internal/core/domain"
)

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.GetByID(context.Background(), "5")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "User not found with id: 5" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUserService_DeleteAll(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, _ = repo.Create(context.Background(), &domain.User{Username: "a", Email: "a@x.com"})
	_, _ = repo.Create(context.Background(), &domain.User{Username: "b", Email: "b@x.com"})

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("delete all failed: %v", err)
	}

	users, _ := svc.GetAll(context.Background())
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}
