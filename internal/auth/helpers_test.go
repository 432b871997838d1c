package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pokemons-api/internal/config"
	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/entities"
)

var testSecret = []byte("test-signing-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupStore(t *testing.T) *users.Repository {
	t.Helper()
	return users.NewRepository(setupTestDB(t))
}

func seedUser(t *testing.T, store CredentialStore, email, password string) *entities.User {
	t.Helper()
	user, err := store.Create(context.Background(), email, password)
	require.NoError(t, err)
	return user
}

func newTestIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(testSecret, config.DefaultTokenLifetime)
	require.NoError(t, err)
	return issuer
}

func newTestVerifier(t *testing.T, store CredentialStore) *TokenVerifier {
	t.Helper()
	verifier, err := NewTokenVerifier(testSecret, store)
	require.NoError(t, err)
	return verifier
}
