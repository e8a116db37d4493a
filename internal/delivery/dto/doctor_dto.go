package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// DoctorProfilePatch is an explicit partial update: nil means "field not
// supplied, keep the previous value"; a non-nil pointer overwrites, even
// with an empty value.
type DoctorProfilePatch struct {
	Specialization  *string          `json:"specialization" validate:"omitempty"`
	ExperienceYears *int             `json:"experience_years" validate:"omitempty,gte=0"`
	Clinic          *string          `json:"clinic" validate:"omitempty"`
	Location        *string          `json:"location" validate:"omitempty"`
	Fees            *decimal.Decimal `json:"fees" validate:"omitempty"`
	Contact         *string          `json:"contact" validate:"omitempty"`
	Languages       *string          `json:"languages" validate:"omitempty"`
	WorkTimings     *string          `json:"work_timings" validate:"omitempty"`
}

// ProfileImage is an optional image attached to a profile update; the
// content is streamed to object storage and only the resulting URL is kept.
type ProfileImage struct {
	FileName string
	Content  []byte
}

// Response DTOs

// DoctorResponse is the full public doctor profile.
type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	Clinic          string          `json:"clinic,omitempty"`
	Location        string          `json:"location,omitempty"`
	Fees            decimal.Decimal `json:"fees"`
	Contact         string          `json:"contact,omitempty"`
	Languages       string          `json:"languages,omitempty"`
	WorkTimings     string          `json:"work_timings,omitempty"`
	IsAvailable     *bool           `json:"is_available"`
	ProfilePicURL   string          `json:"profile_pic_url,omitempty"`
}

// DoctorSummary is the reduced listing view.
type DoctorSummary struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	Fees            decimal.Decimal `json:"fees"`
	IsAvailable     *bool           `json:"is_available"`
	ProfilePicURL   string          `json:"profile_pic_url,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorSummary `json:"doctors"`
	Total   int             `json:"total"`
}

type AvailabilityResponse struct {
	IsAvailable bool `json:"is_available"`
}
