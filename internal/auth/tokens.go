package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mrlokans/pokemons-api/internal/database/users"
	"github.com/mrlokans/pokemons-api/internal/entities"
)

// Claims is the payload of an access token. It only ever carries
// non-secret identity fields.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs access tokens with a shared HMAC secret.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenIssuer creates an issuer. The secret is copied so later changes to
// the caller's slice cannot affect signing.
func NewTokenIssuer(secret []byte, lifetime time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &TokenIssuer{
		secret:   append([]byte(nil), secret...),
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

// Issue creates a signed token for identity, valid for the issuer lifetime.
func (ti *TokenIssuer) Issue(identity *entities.Identity) (string, error) {
	if identity == nil || identity.Email == "" {
		return "", ErrIdentityUnavailable
	}

	now := ti.now()
	claims := &Claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.ID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// TokenVerifier checks access tokens and resolves the identity they name.
type TokenVerifier struct {
	secret []byte
	store  CredentialStore
	now    func() time.Time
}

func NewTokenVerifier(secret []byte, store CredentialStore) (*TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &TokenVerifier{
		secret: append([]byte(nil), secret...),
		store:  store,
		now:    time.Now,
	}, nil
}

// Parse checks signature and expiry and returns the token claims.
func (tv *TokenVerifier) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tv.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tv.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify parses the token and looks the identity up again in the store, so a
// deleted user is rejected even while their token is unexpired.
func (tv *TokenVerifier) Verify(ctx context.Context, tokenString string) (*entities.Identity, error) {
	claims, err := tv.Parse(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := tv.store.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user.Identity(), nil
}
