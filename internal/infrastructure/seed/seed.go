// Package seed provides one-time, idempotent bootstrap data. It is invoked
// explicitly by the process entry point; nothing here runs as an import side
// effect.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/keepnote/notes-api/internal/core/domain"
	"github.com/keepnote/notes-api/internal/core/ports"
)

const (
	defaultUserName     = "Test User"
	defaultUserEmail    = "test@example.com"
	defaultUserPassword = "password123"
)

// EnsureDefaultUser creates the default development account when it does not
// exist yet. Calling it repeatedly is a no-op, and a concurrent duplicate
// insert resolved by the store's unique constraint is treated as success.
func EnsureDefaultUser(ctx context.Context, users ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) error {
	_, err := users.FindByEmail(ctx, defaultUserEmail)
	if err == nil {
		log.Debug().Str("email", defaultUserEmail).Msg("default user already exists")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(defaultUserPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		Name:         defaultUserName,
		Email:        defaultUserEmail,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Info().Str("email", defaultUserEmail).Msg("default user created")
	return nil
}
