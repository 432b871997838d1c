package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service *Service
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *Service) *AuthController {
	return &AuthController{service: service}
}

// RegisterRoutes registers authentication routes and classifies them.
func (ac *AuthController) RegisterRoutes(router gin.IRoutes, routes *RouteTable) {
	router.POST("/auth/login", ac.Login)
	routes.Credential(http.MethodPost, "/auth/login")
}

// Login issues an access token. The guard has already validated the
// credentials in the body, so the admitted identity is read from the context.
func (ac *AuthController) Login(c *gin.Context) {
	identity, ok := GetIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"statusCode": http.StatusUnauthorized,
			"message":    ErrInvalidCredentials.Reason,
			"error":      "Unauthorized",
		})
		return
	}

	token, err := ac.service.IssueFor(identity)
	if err != nil {
		log.Printf("auth: failed to issue token for user %d: %v", identity.ID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"statusCode": http.StatusInternalServerError,
			"message":    "Internal server error",
		})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusCreated, token)
}
