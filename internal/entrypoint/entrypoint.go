package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokemons-api/internal/auth"
	"github.com/mrlokans/pokemons-api/internal/config"
	"github.com/mrlokans/pokemons-api/internal/database"
	"github.com/mrlokans/pokemons-api/internal/database/users"
	http_controllers "github.com/mrlokans/pokemons-api/internal/http"
	"github.com/mrlokans/pokemons-api/internal/pokemons"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// AuthComponents groups the pieces of the authentication core that are
// shared by the server and the CLI commands.
type AuthComponents struct {
	Service  *auth.Service
	Verifier *auth.TokenVerifier
}

// NewAuthComponents builds the login service and the token verifier on top
// of store. The JWT secret is generated when the configuration leaves it
// empty; tokens signed with it stop working after a restart.
func NewAuthComponents(cfg config.Auth, store auth.CredentialStore) (*AuthComponents, error) {
	scheme, err := auth.NewPasswordScheme(cfg)
	if err != nil {
		return nil, err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret, err = auth.GenerateSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		log.Printf("WARNING: Generated JWT secret (set AUTH_JWT_SECRET to persist tokens across restarts)")
	}

	issuer, err := auth.NewTokenIssuer([]byte(secret), cfg.TokenLifetime)
	if err != nil {
		return nil, err
	}
	verifier, err := auth.NewTokenVerifier([]byte(secret), store)
	if err != nil {
		return nil, err
	}

	return &AuthComponents{
		Service:  auth.NewService(store, scheme, issuer),
		Verifier: verifier,
	}, nil
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Pokemons API v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	store := users.NewRepository(db.DB)

	authComponents, err := NewAuthComponents(cfg.Auth, store)
	if err != nil {
		log.Fatalf("Failed to initialize authentication: %v", err)
	}
	log.Printf("Password scheme: %s", cfg.Auth.PasswordScheme)

	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		UserStore:     store,
		Pokemons:      pokemons.NewService(),
		AuthService:   authComponents.Service,
		TokenVerifier: authComponents.Verifier,
		Env:           cfg.App.Env,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, nil)
}
