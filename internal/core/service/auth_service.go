package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/keepnote/notes-api/internal/core/domain"
	"github.com/keepnote/notes-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// NormalizeEmail canonicalizes an email address for lookups and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account and issues a token for it.
//
// The duplicate pre-check leaves a narrow race window between two concurrent
// registrations; the store's unique index on email is the final arbiter, and
// the repository translates its constraint violation into the same
// domain.ErrEmailTaken the pre-check produces.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login verifies credentials and issues a fresh token. An unknown email and
// a wrong password both return domain.ErrInvalidCredentials; the two cases
// must stay indistinguishable to prevent account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}
