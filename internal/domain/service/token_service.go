package service

import "github.com/google/uuid"

// AccessClaims are the validated claims of an access token.
type AccessClaims struct {
	UserID   uuid.UUID
	UserType string
}

// TokenService issues and validates access tokens handed out after a
// successful code verification.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, userType string) (string, error)

	// ValidateAccessToken checks a token string and returns its claims.
	ValidateAccessToken(token string) (*AccessClaims, error)
}
