package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the lifetime of an issued token and of the session cookie.
const SessionTTL = 7 * 24 * time.Hour

// Claim is the identity carried inside a session token.
type Claim struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   Role   `json:"role"`
}

type tokenClaims struct {
	Claim
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. The secret is
// resolved from its provider on every call.
type TokenService struct {
	secrets SecretProvider
	now     func() time.Time
}

// NewTokenService creates a token service backed by the given secret provider.
func NewTokenService(secrets SecretProvider) *TokenService {
	return &TokenService{secrets: secrets, now: time.Now}
}

// WithClock returns a copy of the service that reads time from now.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

// Issue signs claim with iat=now and exp=now+SessionTTL.
func (s *TokenService) Issue(claim Claim) (string, error) {
	if !claim.Role.Valid() {
		return "", fmt.Errorf("issue token: %w: %q", ErrInvalidRole, claim.Role)
	}

	key, err := resolveSecret(s.secrets)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	now := s.now()
	claims := tokenClaims{
		Claim: claim,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and checks token, returning why it was rejected.
func (s *TokenService) Verify(token string) (*Claim, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}

	key, err := resolveSecret(s.secrets)
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	var claims tokenClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token not valid")
	}
	if !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, claims.Role)
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no subject")
	}

	out := claims.Claim
	return &out, nil
}

// Validate returns the embedded claim, or nil for any token that cannot be
// trusted, including when no secret is configured. It never panics.
func (s *TokenService) Validate(token string) (claim *Claim) {
	defer func() {
		if recover() != nil {
			claim = nil
		}
	}()

	c, err := s.Verify(token)
	if err != nil {
		return nil
	}
	return c
}
