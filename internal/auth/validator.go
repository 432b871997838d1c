package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/entities"
)

// Validator checks an email/password pair against the credential store.
type Validator struct {
	store  CredentialStore
	scheme PasswordScheme
}

func NewValidator(store CredentialStore, scheme PasswordScheme) *Validator {
	if scheme == nil {
		scheme = PlainScheme{}
	}
	return &Validator{
		store:  store,
		scheme: scheme,
	}
}

// Validate returns the sanitized identity when the password matches.
// An unknown email and a wrong password both yield (nil, nil); only store
// failures are returned as errors.
func (v *Validator) Validate(ctx context.Context, email, password string) (*entities.Identity, error) {
	user, err := v.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}

	if !v.scheme.Matches(user.Password, password) {
		return nil, nil
	}

	return user.Identity(), nil
}
