package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

type stubAuthorService struct {
	getAllFn  func(ctx context.Context) ([]domain.Author, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Author, error)
	createFn  func(ctx context.Context, input ports.AuthorInput) (*domain.Author, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubAuthorService) GetAll(ctx context.Context) ([]domain.Author, error) {
	return s.getAllFn(ctx)
}

func (s *stubAuthorService) GetByID(ctx context.Context, id string) (*domain.Author, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubAuthorService) Create(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
	return s.createFn(ctx, input)
}

func (s *stubAuthorService) Update(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error) {
	return nil, nil
}

func (s *stubAuthorService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubAuthorService) DeleteAll(ctx context.Context) error {
	return nil
}

func TestAuthorHandler_GetAll_NoTokenRequired(t *testing.T) {
	e := echo.New()
	stub := &stubAuthorService{
		getAllFn: func(ctx context.Context) ([]domain.Author, error) {
			return []domain.Author{{ID: "1", Name: "George Orwell"}}, nil
		},
	}
	h := NewAuthorHandler(stub)

	// No Authorization header: open reads must still reach the operation.
	req := httptest.NewRequest(http.MethodGet, "/api/authors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["name"] != "George Orwell" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthorHandler_Get_NotFoundPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubAuthorService{
		getByIDFn: func(ctx context.Context, id string) (*domain.Author, error) {
			return nil, domain.NotFound("Author", id)
		},
	}
	h := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/authors/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Get(c)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAuthorHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthorService{
		createFn: func(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
			if input.Name != "J.K. Rowling" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Author{ID: "1", Name: input.Name, Biography: input.Biography}, nil
		},
	}
	h := NewAuthorHandler(stub)

	body := strings.NewReader(`{"name":"J.K. Rowling","biography":"British author"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/authors", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthorHandler_Create_MissingName(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthorService{
		createFn: func(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/authors", strings.NewReader(`{"biography":"no name"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["name"]; !ok {
		t.Fatalf("expected name field error, got %+v", ve.Fields)
	}
}

func TestAuthorHandler_Delete_NoContent(t *testing.T) {
	e := echo.New()
	stub := &stubAuthorService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "7" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewAuthorHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/authors/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
