package http

import (
	"github.com/mrlokans/pokemons-api/internal/auth"
	"github.com/mrlokans/pokemons-api/internal/database"
	"github.com/mrlokans/pokemons-api/internal/pokemons"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database  *database.Database
	UserStore UserStore
	Pokemons  *pokemons.Service

	// Authentication
	AuthService   *auth.Service
	TokenVerifier *auth.TokenVerifier

	// Application metadata
	Env     string
	Version string
}
