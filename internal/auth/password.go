package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/pokemons-api/internal/config"
)

// PasswordScheme controls how passwords are stored and compared.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Matches(stored, supplied string) bool
}

// PlainScheme stores passwords as given and compares them for exact
// equality. It is the default and keeps existing plaintext records usable.
type PlainScheme struct{}

func (PlainScheme) Hash(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptScheme stores bcrypt hashes.
type BcryptScheme struct {
	Cost int
}

var ErrPasswordTooLong = errors.New("password exceeds maximum length of 72 bytes")

func (s BcryptScheme) Hash(password string) (string, error) {
	// bcrypt has a 72-byte limit
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// NewPasswordScheme picks the scheme named in the auth configuration.
func NewPasswordScheme(cfg config.Auth) (PasswordScheme, error) {
	switch cfg.PasswordScheme {
	case "", config.PasswordSchemePlain:
		return PlainScheme{}, nil
	case config.PasswordSchemeBcrypt:
		return BcryptScheme{Cost: cfg.BcryptCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, cfg.PasswordScheme)
	}
}

// GenerateSecret creates a random hex-encoded signing secret.
func GenerateSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
