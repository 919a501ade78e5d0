package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode is a single-use SMS login code. Only a bcrypt hash of the
// numeric code is stored; the plaintext exists only in the send-code response
// path. Multiple codes per phone may coexist, the most recent wins.
type VerificationCode struct {
	ID        uuid.UUID
	Phone     string
	CodeHash  string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
}

// Expired reports whether the code can no longer be consumed at the given time.
func (c *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
