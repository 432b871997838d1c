// Package pokemons formats the pokemon catalogue responses. It holds no
// state.
package pokemons

import "fmt"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// FindAll describes the listing, optionally narrowed to one type.
func (s *Service) FindAll(pokemonType string) string {
	if pokemonType != "" {
		return fmt.Sprintf("Return all %s pokemons", pokemonType)
	}
	return "Returned all Pokemons!"
}

// FindOne describes a single pokemon.
func (s *Service) FindOne(id string) string {
	return fmt.Sprintf("Returned pokemon[id: %s]", id)
}
