package ports

import (
	"context"

	"github.com/keepnote/notes-api/internal/core/domain"
)

// AuthService orchestrates registration and login, returning a signed bearer
// token alongside the user on success.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
