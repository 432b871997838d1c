package cli

import (
	"fmt"

	"github.com/mrlokans/pokemons-api/internal/config"
	"github.com/mrlokans/pokemons-api/internal/database"
	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/entrypoint"
)

// openAuth opens the database at dbPath and builds the authentication
// components on top of it. The caller must close the returned database.
func openAuth(dbPath string, authCfg config.Auth) (*database.Database, *entrypoint.AuthComponents, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	components, err := entrypoint.NewAuthComponents(authCfg, users.NewRepository(db.DB))
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, components, nil
}
