package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mrlokans/pokemons-api/internal/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AccessToken is the login response body.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

// Service orchestrates login and registration on top of the validator,
// the token issuer and the credential store.
type Service struct {
	store     CredentialStore
	scheme    PasswordScheme
	validator *Validator
	issuer    *TokenIssuer
}

// NewService creates a new authentication service.
func NewService(store CredentialStore, scheme PasswordScheme, issuer *TokenIssuer) *Service {
	if scheme == nil {
		scheme = PlainScheme{}
	}
	return &Service{
		store:     store,
		scheme:    scheme,
		validator: NewValidator(store, scheme),
		issuer:    issuer,
	}
}

// Validator returns the credential validator used by the service.
func (s *Service) Validator() *Validator {
	return s.validator
}

// Login validates the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*AccessToken, error) {
	identity, err := s.validator.Validate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, ErrInvalidCredentials
	}
	return s.IssueFor(identity)
}

// IssueFor issues a token for an identity that has already been admitted by
// the credential strategy.
func (s *Service) IssueFor(identity *entities.Identity) (*AccessToken, error) {
	token, err := s.issuer.Issue(identity)
	if err != nil {
		return nil, err
	}
	return &AccessToken{AccessToken: token}, nil
}

// Register stores a new identity, hashing the password with the configured
// scheme so the validator can later compare against it.
func (s *Service) Register(ctx context.Context, email, password string) (*entities.Identity, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	// RFC 5321 limit is 254
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	stored, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Create(ctx, email, stored)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

// HashPassword converts a plaintext password into its stored form.
func (s *Service) HashPassword(password string) (string, error) {
	stored, err := s.scheme.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return stored, nil
}
