package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokemons-api/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Every controller registers its routes together with their access rule;
// the guard consults the resulting table before each handler runs.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.StrictTransportSecurityMiddleware())

	routes := auth.NewRouteTable()
	guard := auth.NewGuard(routes, cfg.AuthService.Validator(), cfg.TokenVerifier)
	router.Use(guard.Handler())

	NewAppController(cfg.Env).RegisterRoutes(router, routes)
	NewHealthController(cfg.Database, cfg.Version).RegisterRoutes(router, routes)
	NewPokemonsController(cfg.Pokemons).RegisterRoutes(router, routes)
	NewUsersController(cfg.UserStore, cfg.AuthService).RegisterRoutes(router, routes)
	auth.NewAuthController(cfg.AuthService).RegisterRoutes(router, routes)

	return router
}
