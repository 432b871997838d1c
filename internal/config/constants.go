package config

import "time"

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./pokemons.db"

	// DefaultTokenLifetime is how long an issued access token stays valid.
	// It is fixed and not read from the environment.
	DefaultTokenLifetime = 60 * time.Minute
)
