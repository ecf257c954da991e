package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signin authenticates a user and returns a JWT token with the public profile.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Login credentials"
// @Success      200   {object}  jwtResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  errorDetails
// @Router       /api/auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jwtResponse{
		Token:    result.Token,
		ID:       result.User.ID,
		Username: result.User.Username,
		Email:    result.User.Email,
		Role:     result.User.Role,
	})
}

// Signup registers a new account with role USER.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Username is already taken!"})
	case errors.Is(err, domain.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Email is already in use!"})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully!"})
}

// Signout acknowledges logout. Tokens are stateless; the client discards its
// copy and no server state changes.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "User logged out successfully!"})
}
