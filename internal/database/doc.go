// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── users/           # Credential store (user records)
//
// # Usage
//
//	db, err := database.NewDatabase("./pokemons.db")
//	usersRepo := users.NewRepository(db.DB)
//	user, err := usersRepo.FindByEmail(ctx, "ash@example.com")
//
// Consumers declare the narrow interface they need; internal/interfaces
// asserts at compile time that users.Repository satisfies them.
package database
