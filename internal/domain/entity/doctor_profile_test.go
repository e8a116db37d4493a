package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorProfile_ToggleAvailability(t *testing.T) {
	available := true
	profile := &DoctorProfile{IsAvailable: &available}

	profile.ToggleAvailability()
	assert.False(t, *profile.IsAvailable)

	// Toggling twice restores the original value.
	profile.ToggleAvailability()
	assert.True(t, *profile.IsAvailable)
}

func TestDoctorProfile_ToggleAvailability_NilFlag(t *testing.T) {
	profile := &DoctorProfile{}

	profile.ToggleAvailability()
	assert.NotNil(t, profile.IsAvailable)
	assert.False(t, *profile.IsAvailable)
}
