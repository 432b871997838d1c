package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokemons-api/internal/auth"
)

const noEnv = "no-env-var"

// AppResponse is the greeting payload served at the root.
type AppResponse struct {
	Title string            `json:"title"`
	Links map[string]string `json:"links"`
}

type AppController struct {
	env string
}

func NewAppController(env string) *AppController {
	if env == "" {
		env = noEnv
	}
	return &AppController{env: env}
}

func (ac *AppController) RegisterRoutes(router gin.IRoutes, routes *auth.RouteTable) {
	router.GET("/", ac.Hello)
	routes.Public(http.MethodGet, "/")
}

// Hello names the environment and links to the pokemon endpoints.
func (ac *AppController) Hello(c *gin.Context) {
	host := c.Request.Host
	c.JSON(http.StatusOK, AppResponse{
		Title: "Pokemons [in " + ac.env + "]",
		Links: map[string]string{
			"get-all-pokemons":      host + "/pokemons",
			"get-one-pokemon":       host + "/pokemons/[id]",
			"get-all-type-pokemons": host + "/pokemons?type=[type]",
		},
	})
}
