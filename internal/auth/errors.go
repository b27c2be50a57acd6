package auth

import "errors"

var (
	// ErrConfiguration is returned when no signing secret can be resolved.
	ErrConfiguration = errors.New("auth: signing secret not configured")
	// ErrUnauthorized means the caller has no valid session.
	ErrUnauthorized = errors.New("auth: unauthenticated")
	// ErrForbidden means the caller's role does not allow the operation.
	ErrForbidden = errors.New("auth: forbidden")
	// ErrInvalidCredentials is returned for a wrong email or password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidRole is returned when a claim carries an unknown role.
	ErrInvalidRole = errors.New("auth: invalid role")
	// ErrPasswordTooLong is returned for passwords bcrypt would silently truncate.
	ErrPasswordTooLong = errors.New("auth: password exceeds 72 bytes")
)
