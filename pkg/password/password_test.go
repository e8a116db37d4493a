package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	hashed, err := Hash("password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "password123", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
}

func TestHash_DistinctSalts(t *testing.T) {
	first, err := Hash("password123")
	assert.NoError(t, err)
	second, err := Hash("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, _ := Hash("password123")

	assert.True(t, Verify("password123", hashed))
	assert.False(t, Verify("wrongpassword", hashed))
}

func TestVerify_InvalidHash(t *testing.T) {
	assert.False(t, Verify("password123", "invalidhash"))
}

func TestVerify_PlaintextStored(t *testing.T) {
	// A plaintext value is never a valid bcrypt hash, so comparing a
	// password against itself must fail.
	assert.False(t, Verify("password123", "password123"))
}
