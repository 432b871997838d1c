package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pokemons-api/internal/entities"
)

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer(nil, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewTokenVerifier([]byte{}, nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestTokenIssuer_IssueRequiresIdentity(t *testing.T) {
	issuer := newTestIssuer(t)

	_, err := issuer.Issue(nil)
	assert.ErrorIs(t, err, ErrIdentityUnavailable)

	_, err = issuer.Issue(&entities.Identity{ID: 1})
	assert.ErrorIs(t, err, ErrIdentityUnavailable)
}

func TestTokens_RoundTrip(t *testing.T) {
	store := setupStore(t)
	user := seedUser(t, store, "ash@example.com", "pikachu")
	issuer := newTestIssuer(t)
	verifier := newTestVerifier(t, store)

	token, err := issuer.Issue(user.Identity())
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "ash@example.com", identity.Email)
	assert.Equal(t, user.ID, identity.ID)
}

func TestTokens_ClaimsShape(t *testing.T) {
	issuer := newTestIssuer(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	issuer.now = func() time.Time { return now }

	token, err := issuer.Issue(&entities.Identity{ID: 7, Email: "ash@example.com"})
	require.NoError(t, err)

	verifier := newTestVerifier(t, nil)
	verifier.now = func() time.Time { return now.Add(time.Minute) }

	claims, err := verifier.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ash@example.com", claims.Email)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, now.Equal(claims.IssuedAt.Time))
	assert.True(t, now.Add(60*time.Minute).Equal(claims.ExpiresAt.Time))

	// Decode the raw payload: only non-secret claims are present.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.NotContains(t, raw, "password")
	assert.ElementsMatch(t, []string{"email", "sub", "jti", "iat", "exp"}, keys(raw))
}

func TestTokens_UniqueIDs(t *testing.T) {
	issuer := newTestIssuer(t)
	identity := &entities.Identity{ID: 1, Email: "ash@example.com"}

	first, err := issuer.Issue(identity)
	require.NoError(t, err)
	second, err := issuer.Issue(identity)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenVerifier_Expired(t *testing.T) {
	store := setupStore(t)
	user := seedUser(t, store, "ash@example.com", "pikachu")

	issued := time.Now()
	issuer := newTestIssuer(t)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(user.Identity())
	require.NoError(t, err)

	verifier := newTestVerifier(t, store)

	verifier.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = verifier.Verify(context.Background(), token)
	require.NoError(t, err)

	verifier.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Unauthorized", Reason(err))
}

func TestTokenVerifier_ExpiredRegardlessOfStore(t *testing.T) {
	issued := time.Now()
	issuer := newTestIssuer(t)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue(&entities.Identity{ID: 1, Email: "ghost@example.com"})
	require.NoError(t, err)

	// A nil store would panic if it were consulted.
	verifier := newTestVerifier(t, nil)
	verifier.now = func() time.Time { return issued.Add(2 * time.Hour) }

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenVerifier_UserRemoved(t *testing.T) {
	store := setupStore(t)
	user := seedUser(t, store, "ash@example.com", "pikachu")
	issuer := newTestIssuer(t)
	verifier := newTestVerifier(t, store)

	token, err := issuer.Issue(user.Identity())
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), user.ID))

	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "User not found...", Reason(err))
}

func TestTokenVerifier_Rejects(t *testing.T) {
	store := setupStore(t)
	user := seedUser(t, store, "ash@example.com", "pikachu")
	verifier := newTestVerifier(t, store)

	otherIssuer, err := NewTokenIssuer([]byte("another-secret"), time.Hour)
	require.NoError(t, err)
	forged, err := otherIssuer.Issue(user.Identity())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Email: "ash@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: "ash@example.com",
	}).SignedString(testSecret)
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrMissingToken},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "wrong secret", token: forged, wantErr: ErrInvalidToken},
		{name: "alg none", token: none, wantErr: ErrInvalidToken},
		{name: "missing expiry", token: noExpiry, wantErr: ErrInvalidToken},
		{name: "missing email", token: noEmail, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := verifier.Verify(context.Background(), tt.token)

			assert.Nil(t, identity)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsUnauthorized(err))
		})
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
