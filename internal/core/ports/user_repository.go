package ports

import (
	"context"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Create must return domain.ErrEmailTaken when the unique email constraint
// is violated, so the store remains the final arbiter of the registration
// race even when the service-level pre-check passed.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
