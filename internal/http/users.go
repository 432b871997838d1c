package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/pokemons-api/internal/auth"
	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/entities"
)

// CreateUserRequest is the registration body.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest changes email and/or password. Omitted fields stay as they are.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=1"`
}

// UsersController handles the user resource. Responses only ever carry
// sanitized identities.
type UsersController struct {
	store       UserStore
	authService *auth.Service
}

// NewUsersController creates a new UsersController.
func NewUsersController(store UserStore, authService *auth.Service) *UsersController {
	return &UsersController{
		store:       store,
		authService: authService,
	}
}

// RegisterRoutes registers user routes. Registration is public; everything
// else needs a bearer token.
func (uc *UsersController) RegisterRoutes(router gin.IRoutes, routes *auth.RouteTable) {
	router.POST("/users", uc.Create)
	router.GET("/users", uc.FindAll)
	router.GET("/users/:id", uc.FindOne)
	router.PATCH("/users/:id", uc.Update)
	router.DELETE("/users/:id", uc.Remove)
	routes.Public(http.MethodPost, "/users")
}

func (uc *UsersController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	identity, err := uc.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserExists):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrEmailInvalid), errors.Is(err, auth.ErrEmailRequired),
			errors.Is(err, auth.ErrPasswordRequired), errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "create user")
		}
		return
	}

	c.JSON(http.StatusCreated, identity)
}

func (uc *UsersController) FindAll(c *gin.Context) {
	all, err := uc.store.FindAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}

	identities := make([]*entities.Identity, 0, len(all))
	for i := range all {
		identities = append(identities, all[i].Identity())
	}
	c.JSON(http.StatusOK, identities)
}

func (uc *UsersController) FindOne(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.FindByID(c.Request.Context(), id)
	if err != nil {
		uc.respondStoreError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, user.Identity())
}

// Update lets an authenticated user change their own email or password.
func (uc *UsersController) Update(c *gin.Context) {
	id, ok := uc.ownID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	upd := users.UserUpdate{Email: req.Email}
	if req.Password != nil {
		stored, err := uc.authService.HashPassword(*req.Password)
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}
		upd.Password = &stored
	}

	user, err := uc.store.Update(c.Request.Context(), id, upd)
	if err != nil {
		uc.respondStoreError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, user.Identity())
}

// Remove lets an authenticated user delete their own account. Tokens issued
// to it stop working on the next request.
func (uc *UsersController) Remove(c *gin.Context) {
	id, ok := uc.ownID(c)
	if !ok {
		return
	}

	if err := uc.store.Delete(c.Request.Context(), id); err != nil {
		uc.respondStoreError(c, err, "delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// ownID parses the id parameter and checks it belongs to the caller.
func (uc *UsersController) ownID(c *gin.Context) (uint, bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return 0, false
	}

	identity, ok := auth.GetIdentity(c)
	if !ok || identity.ID != id {
		respondError(c, http.StatusForbidden, "cannot modify another user")
		return 0, false
	}
	return id, true
}

func (uc *UsersController) respondStoreError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		respondNotFound(c, "user")
	case errors.Is(err, users.ErrUserExists):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}
