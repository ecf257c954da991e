package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/misranrifat/book-store/internal/api/handler"
	"github.com/misranrifat/book-store/internal/core/domain"
)

// errorDetails is the canonical error envelope for not-found, forbidden,
// unauthorized, and internal errors.
type errorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures as a field→message map with 400.
//   - Logs every error at the point it is converted into a response.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		details := "uri=" + c.Request().URL.Path

		// Validation failures have their own body shape.
		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			log.Warn().Str("uri", c.Request().URL.Path).Msg("validation failed: " + ve.Error())
			_ = c.JSON(http.StatusBadRequest, ve.Fields)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorDetails{
			Timestamp: time.Now().UTC(),
			Message:   msg,
			Details:   details,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: router 404/405, plus the 401s raised by the auth
	// middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &nf):
		log.Warn().Str("entity", nf.Entity).Str("id", nf.ID).Msg("entity not found")
		return http.StatusNotFound, nf.Error()
	case errors.Is(err, domain.ErrForbidden):
		log.Warn().Str("uri", c.Request().URL.Path).Msg("access denied")
		return http.StatusForbidden, "You do not have permission to access this resource"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	}

	// Unexpected error: log the real cause, pass the message through.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
