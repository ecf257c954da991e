package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/misranrifat/book-store/internal/api/metrics"
	"github.com/misranrifat/book-store/internal/core/domain"
	"github.com/misranrifat/book-store/internal/core/ports"
)

// AuthService implements registration and login. Tokens are HS256-signed JWTs
// carrying the username as subject plus a role claim; the signing secret is
// fixed for the process lifetime.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials and mints a token. Unknown username and wrong
// password collapse into the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("username", username).Msg("login rejected")
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("role", user.Role).Msg("login succeeded")
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.LoginResult{Token: token, User: user}, nil
}

// Register creates an account with role USER. Username is checked before
// email, matching the order conflicts are reported in; the repository's unique
// indexes backstop both checks under concurrent registrations.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	s.logger.Info().Str("username", username).Msg("registering user")

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		s.logger.Warn().Str("username", username).Msg("username is already taken")
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUsernameTaken
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.logger.Warn().Str("email", email).Msg("email is already in use")
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrEmailTaken
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return created, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
