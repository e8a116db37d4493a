package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jordan@example.com", normalizeEmail("Jordan@Example.COM"))
	assert.Equal(t, "jordan@example.com", normalizeEmail("  jordan@example.com  "))
	assert.Equal(t, "jordan@example.com", normalizeEmail("jordan@example.com"))
}
