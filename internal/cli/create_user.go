package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/pokemons-api/internal/config"
)

// CreateUserCommand registers a user directly in the database.
type CreateUserCommand struct {
	Email        string
	Password     string
	DatabasePath string

	// Auth is taken from the environment; the password scheme decides how
	// the password is stored.
	Auth config.Auth
}

func NewCreateUserCommand() *CreateUserCommand {
	cfg := config.NewConfig()
	return &CreateUserCommand{
		DatabasePath: cfg.Database.Path,
		Auth:         cfg.Auth,
	}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)

	fs.StringVar(&cmd.Email, "email", "", "Email of the new user (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password of the new user (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user -email <email> -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a user that can log in through POST /auth/login.\n")
		fmt.Fprintf(os.Stderr, "The password is stored using AUTH_PASSWORD_SCHEME (plain by default).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Email == "" {
		return fmt.Errorf("required flag -email not provided")
	}
	if cmd.Password == "" {
		return fmt.Errorf("required flag -password not provided")
	}

	return nil
}

func (cmd *CreateUserCommand) Run() error {
	db, components, err := openAuth(cmd.DatabasePath, cmd.Auth)
	if err != nil {
		return err
	}
	defer db.Close()

	identity, err := components.Service.Register(context.Background(), cmd.Email, cmd.Password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("Created user %s (id %d)\n", identity.Email, identity.ID)
	return nil
}
