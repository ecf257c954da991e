package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

// AuthorHandler handles HTTP requests for author operations. Reads are open;
// mutations sit behind the ADMIN gate in the router.
type AuthorHandler struct {
	service ports.AuthorService
}

func NewAuthorHandler(service ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// GetAll handles GET /api/authors.
//
// @Summary      List all authors
// @Tags         authors
// @Produce      json
// @Success      200  {array}  authorResponse
// @Router       /api/authors [get]
func (h *AuthorHandler) GetAll(c echo.Context) error {
	authors, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]authorResponse, 0, len(authors))
	for _, a := range authors {
		resp = append(resp, toAuthorResponse(&a))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/authors/:id.
//
// @Summary      Get an author by id
// @Tags         authors
// @Produce      json
// @Param        id   path      string  true  "Author id"
// @Success      200  {object}  authorResponse
// @Failure      404  {object}  errorDetails
// @Router       /api/authors/{id} [get]
func (h *AuthorHandler) Get(c echo.Context) error {
	author, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(author))
}

// Create handles POST /api/authors.
//
// @Summary      Create an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      authorRequest  true  "Author details"
// @Success      201   {object}  authorResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  errorDetails
// @Failure      403   {object}  errorDetails
// @Router       /api/authors [post]
func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author, err := h.service.Create(c.Request().Context(), ports.AuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAuthorResponse(author))
}

// Update handles PUT /api/authors/:id.
//
// @Summary      Update an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Author id"
// @Param        body  body      authorRequest  true  "Author details"
// @Success      200   {object}  authorResponse
// @Failure      404   {object}  errorDetails
// @Router       /api/authors/{id} [put]
func (h *AuthorHandler) Update(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(author))
}

// Delete handles DELETE /api/authors/:id. The author's books go with it.
//
// @Summary      Delete an author and its books
// @Tags         authors
// @Security     BearerAuth
// @Param        id  path  string  true  "Author id"
// @Success      204
// @Failure      404  {object}  errorDetails
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/authors.
//
// @Summary      Delete all authors
// @Tags         authors
// @Security     BearerAuth
// @Success      204
// @Router       /api/authors [delete]
func (h *AuthorHandler) DeleteAll(c echo.Context) error {
	if err := h.service.DeleteAll(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toAuthorResponse(a *domain.Author) authorResponse {
	return authorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Biography: a.Biography,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
