package auth

import (
	"testing"

	"yasen/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptCodeHasher {
	// Low cost keeps the test fast.
	return &bcryptCodeHasher{cost: bcrypt.MinCost}
}

func TestCodeHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "1234", hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check("1234", hash))
}

func TestCodeHasher_Check(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("4821")
	assert.NoError(t, err)

	// Correct code
	assert.True(t, hasher.Check("4821", hash))

	// Wrong code
	assert.False(t, hasher.Check("4822", hash))

	// Empty code
	assert.False(t, hasher.Check("", hash))

	// Invalid hash
	assert.False(t, hasher.Check("4821", "invalid_hash"))
}

func TestNewCodeHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}

	hasher := NewCodeHasher(cfg)

	hash, err := hasher.Hash("9999")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewCodeHasher_DefaultCostWhenUnset(t *testing.T) {
	hasher := NewCodeHasher(&config.Config{})

	hash, err := hasher.Hash("1000")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
