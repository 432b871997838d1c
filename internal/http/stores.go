package http

import (
	"context"

	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/entities"
)

// UserStore is the user persistence needed by UsersController.
type UserStore interface {
	FindAll(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	Update(ctx context.Context, id uint, upd users.UserUpdate) (*entities.User, error)
	Delete(ctx context.Context, id uint) error
}
