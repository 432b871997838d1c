package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mrlokans/pokemons-api/internal/entities"
)

// Context keys for identity data
const (
	ContextKeyIdentity = "auth_identity"
	ContextKeyStrategy = "auth_strategy"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// authenticator is implemented once per Strategy.
type authenticator interface {
	authenticate(c *gin.Context) (*entities.Identity, error)
}

type credentialStrategy struct {
	validator *Validator
}

func (s credentialStrategy) authenticate(c *gin.Context) (*entities.Identity, error) {
	var creds Credentials
	// ShouldBindBodyWith caches the body so the handler can bind it again.
	if err := c.ShouldBindBodyWith(&creds, binding.JSON); err != nil {
		return nil, &ValidationError{Err: err}
	}

	identity, err := s.validator.Validate(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, ErrInvalidCredentials
	}
	return identity, nil
}

type tokenStrategy struct {
	verifier *TokenVerifier
}

func (s tokenStrategy) authenticate(c *gin.Context) (*entities.Identity, error) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil, ErrMissingToken
	}
	return s.verifier.Verify(c.Request.Context(), token)
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// Guard is the process-wide gate that runs before every route handler.
type Guard struct {
	routes     *RouteTable
	strategies map[Strategy]authenticator
}

// NewGuard creates the access policy gate.
func NewGuard(routes *RouteTable, validator *Validator, verifier *TokenVerifier) *Guard {
	return &Guard{
		routes: routes,
		strategies: map[Strategy]authenticator{
			StrategyCredential: credentialStrategy{validator: validator},
			StrategyToken:      tokenStrategy{verifier: verifier},
		},
	}
}

// Handler returns a Gin middleware that admits or rejects each request
// according to the route table.
func (g *Guard) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		// No matching route: let gin answer 404.
		if route == "" {
			c.Next()
			return
		}

		rule := g.routes.Lookup(c.Request.Method, route)
		if rule.Visibility == Public {
			c.Next()
			return
		}

		identity, err := g.strategies[rule.Strategy].authenticate(c)
		if err != nil {
			reject(c, err)
			return
		}

		c.Set(ContextKeyIdentity, identity)
		c.Set(ContextKeyStrategy, rule.Strategy)
		c.Next()
	}
}

// reject aborts the chain with a status matching the failure class.
func reject(c *gin.Context, err error) {
	switch {
	case IsValidation(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
			"error":      "Bad Request",
		})
	case IsUnauthorized(err):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"statusCode": http.StatusUnauthorized,
			"message":    Reason(err),
			"error":      "Unauthorized",
		})
	default:
		log.Printf("auth: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"statusCode": http.StatusInternalServerError,
			"message":    "Internal server error",
		})
	}
}

// GetIdentity retrieves the authenticated identity from the context.
func GetIdentity(c *gin.Context) (*entities.Identity, bool) {
	if v, exists := c.Get(ContextKeyIdentity); exists {
		if identity, ok := v.(*entities.Identity); ok && identity != nil {
			return identity, true
		}
	}
	return nil, false
}

// GetStrategy retrieves the strategy that admitted the request.
func GetStrategy(c *gin.Context) (Strategy, bool) {
	if v, exists := c.Get(ContextKeyStrategy); exists {
		if s, ok := v.(Strategy); ok {
			return s, true
		}
	}
	return 0, false
}

// IsAuthenticated returns true if an identity is attached to the request.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := GetIdentity(c)
	return ok
}
