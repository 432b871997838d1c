package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokemons-api/internal/auth"
	"github.com/mrlokans/pokemons-api/internal/pokemons"
)

type PokemonsController struct {
	service *pokemons.Service
}

func NewPokemonsController(service *pokemons.Service) *PokemonsController {
	return &PokemonsController{service: service}
}

// RegisterRoutes registers the pokemon routes. They are public.
func (pc *PokemonsController) RegisterRoutes(router gin.IRoutes, routes *auth.RouteTable) {
	router.GET("/pokemons", pc.FindAll)
	router.GET("/pokemons/:id", pc.FindOne)
	routes.Public(http.MethodGet, "/pokemons").
		Public(http.MethodGet, "/pokemons/:id")
}

func (pc *PokemonsController) FindAll(c *gin.Context) {
	c.String(http.StatusOK, pc.service.FindAll(c.Query("type")))
}

func (pc *PokemonsController) FindOne(c *gin.Context) {
	c.String(http.StatusOK, pc.service.FindOne(c.Param("id")))
}
