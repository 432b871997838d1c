package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/pokemons-api/internal/auth"
	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// CredentialStore implementations
var _ auth.CredentialStore = (*users.Repository)(nil)

// UserStore implementations
var _ http.UserStore = (*users.Repository)(nil)

// =============================================================================
// Password Schemes
// =============================================================================

var _ auth.PasswordScheme = auth.PlainScheme{}
var _ auth.PasswordScheme = auth.BcryptScheme{}
