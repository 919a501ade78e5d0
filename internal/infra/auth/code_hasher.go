// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"yasen/config"
	"yasen/internal/domain/service"
)

// bcryptCodeHasher is a concrete implementation of the CodeHasher interface using bcrypt.
// Verification codes are short-lived four digit strings, so a moderate cost
// factor keeps the send-code path responsive.
type bcryptCodeHasher struct {
	cost int
}

// NewCodeHasher is the constructor for bcryptCodeHasher.
// It returns the implementation as a service.CodeHasher interface.
func NewCodeHasher(cfg *config.Config) service.CodeHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptCodeHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext code.
// bcrypt automatically handles salt generation.
func (h *bcryptCodeHasher) Hash(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	return string(bytes), err
}

// Check compares a plaintext code with a bcrypt hash.
func (h *bcryptCodeHasher) Check(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	// err is nil if the code and hash match.
	return err == nil
}
