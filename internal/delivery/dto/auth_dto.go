package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// RegisterRequest covers both roles; the role-specific fields are only
// consulted for the matching role and ignored otherwise.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=doctor patient"`

	// Doctor fields
	Specialization  string          `json:"specialization" validate:"omitempty"`
	ExperienceYears int             `json:"experience_years" validate:"omitempty,gte=0"`
	Clinic          string          `json:"clinic" validate:"omitempty"`
	Location        string          `json:"location" validate:"omitempty"`
	Fees            decimal.Decimal `json:"fees"`
	Contact         string          `json:"contact" validate:"omitempty"`
	Languages       string          `json:"languages" validate:"omitempty"`
	WorkTimings     string          `json:"work_timings" validate:"omitempty"`

	// Patient fields
	Age int `json:"age" validate:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Role, when supplied, must match the stored role.
	Role string `json:"role" validate:"omitempty,oneof=doctor patient"`
}

// Response DTOs

// UserResponse is the public-safe view of a user: never includes the
// password hash. Exactly one of Doctor or Patient is set, matching the
// stored role.
type UserResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"role"`
	Doctor    *DoctorView  `json:"doctor,omitempty"`
	Patient   *PatientView `json:"patient,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// DoctorView carries the doctor-only attributes of a role-shaped user view.
type DoctorView struct {
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

// PatientView carries the patient-only attributes of a role-shaped user view.
type PatientView struct {
	Age int `json:"age"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user"`
}
