package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the centralized credential record for both patients and doctors.
// Emails are stored lower-cased, so the unique index enforces
// case-insensitive uniqueness. The password column always holds a bcrypt
// hash and is never serialized.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role           Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor reports whether the user carries the doctor role.
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}

// IsPatient reports whether the user carries the patient role.
func (u *User) IsPatient() bool {
	return u.RoleID == RoleIDPatient
}

// RoleName resolves the role id to its name without requiring the Role
// association to be loaded.
func (u *User) RoleName() string {
	switch u.RoleID {
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDPatient:
		return RolePatient
	}
	return u.Role.RoleName
}
