package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/misranrifat/book-store/internal/api/metrics"
	"github.com/misranrifat/book-store/internal/core/domain"
)

// UserResolver resolves a token subject to a stored identity. A token whose
// subject no longer exists is rejected even when its signature and expiry are
// fine.
type UserResolver interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Auth validates the bearer token and injects the resolved identity into the
// request context under the "username" and "role" keys. The role used for
// authorization is the stored one, not the claim, so a stale token cannot
// outlive a role it no longer has.
func Auth(jwtSecret string, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return rejectToken(err)
			}

			subject, _ := claims["sub"].(string)
			if subject == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if domain.IsNotFound(err) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set("username", user.Username)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}

// rejectToken maps jwt parse failures onto distinct 401 messages.
func rejectToken(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		metrics.TokenRejectionsTotal.WithLabelValues("bad_signature").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token signature")
	case errors.Is(err, jwt.ErrTokenMalformed):
		metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "malformed token")
	default:
		metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
}
