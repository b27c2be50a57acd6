package interfaces

import "church-portal/internal/auth"

// TokenValidator resolves a session token to its claim, or nil.
type TokenValidator interface {
	Validate(token string) *auth.Claim
}

// AuthServiceInterface is the session surface handlers and middlewares use.
type AuthServiceInterface interface {
	TokenValidator
	Issue(claim auth.Claim) (string, error)
}
