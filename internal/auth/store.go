package auth

import (
	"context"

	"github.com/mrlokans/pokemons-api/internal/entities"
)

// CredentialStore is the slice of user persistence the auth core needs.
// FindByEmail returns users.ErrUserNotFound when no record matches.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, email, password string) (*entities.User, error)
}
