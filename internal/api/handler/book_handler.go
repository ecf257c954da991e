package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

// BookHandler handles HTTP requests for book operations.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// GetAll handles GET /api/books.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {array}  bookResponse
// @Router       /api/books [get]
func (h *BookHandler) GetAll(c echo.Context) error {
	books, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponses(books))
}

// Get handles GET /api/books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  errorDetails
// @Router       /api/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// GetByAuthor handles GET /api/books/author/:id. An unknown author yields an
// empty list.
//
// @Summary      List books by author
// @Tags         books
// @Produce      json
// @Param        id   path     string  true  "Author id"
// @Success      200  {array}  bookResponse
// @Router       /api/books/author/{id} [get]
func (h *BookHandler) GetByAuthor(c echo.Context) error {
	books, err := h.service.GetByAuthorID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponses(books))
}

// Create handles POST /api/books.
//
// @Summary      Create a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  errorDetails
// @Router       /api/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.service.Create(c.Request().Context(), toBookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBookResponse(book))
}

// Update handles PUT /api/books/:id.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Book details"
// @Success      200   {object}  bookResponse
// @Failure      404   {object}  errorDetails
// @Router       /api/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.service.Update(c.Request().Context(), c.Param("id"), toBookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /api/books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book id"
// @Success      204
// @Failure      404  {object}  errorDetails
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/books.
//
// @Summary      Delete all books
// @Tags         books
// @Security     BearerAuth
// @Success      204
// @Router       /api/books [delete]
func (h *BookHandler) DeleteAll(c echo.Context) error {
	if err := h.service.DeleteAll(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toBookInput(req bookRequest) ports.BookInput {
	return ports.BookInput{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Description: req.Description,
		AuthorID:    req.AuthorID,
	}
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		ISBN:        b.ISBN,
		Price:       b.Price,
		Description: b.Description,
		AuthorID:    b.AuthorID,
		AuthorName:  b.AuthorName,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookResponses(books []domain.Book) []bookResponse {
	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, toBookResponse(&b))
	}
	return resp
}
