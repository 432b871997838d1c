package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/pokemons-api/internal/config"
)

// IssueTokenCommand logs in with email and password and prints the bearer
// token, the same way POST /auth/login does.
type IssueTokenCommand struct {
	Email        string
	Password     string
	DatabasePath string

	Auth config.Auth
}

func NewIssueTokenCommand() *IssueTokenCommand {
	cfg := config.NewConfig()
	return &IssueTokenCommand{
		DatabasePath: cfg.Database.Path,
		Auth:         cfg.Auth,
	}
}

func (cmd *IssueTokenCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("issue-token", flag.ContinueOnError)

	fs.StringVar(&cmd.Email, "email", "", "Email of the user (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password of the user (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s issue-token -email <email> -password <password> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print an access token for the given credentials.\n")
		fmt.Fprintf(os.Stderr, "AUTH_JWT_SECRET must match the secret used by the server.\n\n")
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

func (cmd *IssueTokenCommand) Run() error {
	// A generated secret would produce a token no server accepts.
	if cmd.Auth.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is not set")
	}

	db, components, err := openAuth(cmd.DatabasePath, cmd.Auth)
	if err != nil {
		return err
	}
	defer db.Close()

	token, err := components.Service.Login(context.Background(), cmd.Email, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Println(token.AccessToken)
	return nil
}
