package entity

import "github.com/google/uuid"

// PatientProfile holds the patient-only attributes of a user.
type PatientProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Age    int       `gorm:"not null;default:0" json:"age"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
