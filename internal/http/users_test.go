package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pokemons-api/internal/entities"
)

func userPath(id uint) string {
	return "/users/" + strconv.FormatUint(uint64(id), 10)
}

func TestUsers_CreateReturnsIdentity(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(http.MethodPost, "/users", `{"email":"oak@pallet.town","password":"secret"}`, "")

	require.Equal(t, http.StatusCreated, w.Code)
	var identity entities.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.NotZero(t, identity.ID)
	assert.Equal(t, "oak@pallet.town", identity.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestUsers_CreateDuplicate(t *testing.T) {
	app := setupTestApp(t)
	app.register(t, "oak@pallet.town", "secret")

	w := app.do(http.MethodPost, "/users", `{"email":"oak@pallet.town","password":"other"}`, "")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUsers_CreateValidation(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"oak@pallet.town"}`},
		{"invalid email", `{"email":"oak","password":"secret"}`},
		{"malformed json", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(http.MethodPost, "/users", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUsers_FindOne(t *testing.T) {
	app := setupTestApp(t)
	id := app.register(t, "elm@littleroot.town", "torchic")
	token := app.login(t, "elm@littleroot.town", "torchic")

	w := app.do(http.MethodGet, userPath(id), "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "elm@littleroot.town")

	w = app.do(http.MethodGet, userPath(id+100), "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(http.MethodGet, "/users/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsers_UpdateOwnPassword(t *testing.T) {
	app := setupTestApp(t)
	id := app.register(t, "may@petalburg.city", "mudkip")
	token := app.login(t, "may@petalburg.city", "mudkip")

	w := app.do(http.MethodPatch, userPath(id), `{"password":"treecko"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(http.MethodPost, "/auth/login", `{"email":"may@petalburg.city","password":"mudkip"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	app.login(t, "may@petalburg.city", "treecko")
}

func TestUsers_UpdateInvalidEmail(t *testing.T) {
	app := setupTestApp(t)
	id := app.register(t, "may@petalburg.city", "mudkip")
	token := app.login(t, "may@petalburg.city", "mudkip")

	w := app.do(http.MethodPatch, userPath(id), `{"email":"nope"}`, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsers_CannotModifyOthers(t *testing.T) {
	app := setupTestApp(t)
	app.register(t, "may@petalburg.city", "mudkip")
	victim := app.register(t, "brendan@littleroot.town", "torchic")
	token := app.login(t, "may@petalburg.city", "mudkip")

	w := app.do(http.MethodPatch, userPath(victim), `{"password":"owned"}`, token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(http.MethodDelete, userPath(victim), "", token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	app.login(t, "brendan@littleroot.town", "torchic")
}

func TestUsers_UpdateEmailTaken(t *testing.T) {
	app := setupTestApp(t)
	id := app.register(t, "may@petalburg.city", "mudkip")
	app.register(t, "brendan@littleroot.town", "torchic")
	token := app.login(t, "may@petalburg.city", "mudkip")

	w := app.do(http.MethodPatch, userPath(id), `{"email":"brendan@littleroot.town"}`, token)

	assert.Equal(t, http.StatusConflict, w.Code)
}
