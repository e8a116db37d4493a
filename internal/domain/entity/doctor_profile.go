package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorProfile holds the doctor-only attributes of a user.
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(100);index" json:"specialization"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	Clinic          string          `gorm:"type:varchar(255)" json:"clinic,omitempty"`
	Location        string          `gorm:"type:varchar(255)" json:"location,omitempty"`
	Fees            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"fees"`
	Contact         string          `gorm:"type:varchar(50)" json:"contact,omitempty"`
	Languages       string          `gorm:"type:varchar(255)" json:"languages,omitempty"`
	WorkTimings     string          `gorm:"type:varchar(255)" json:"work_timings,omitempty"`
	IsAvailable     *bool           `gorm:"not null;default:true" json:"is_available"`
	ProfilePicURL   string          `gorm:"type:text" json:"profile_pic_url,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

// ToggleAvailability flips the availability flag in place.
func (p *DoctorProfile) ToggleAvailability() {
	if p.IsAvailable == nil {
		available := false
		p.IsAvailable = &available
		return
	}
	flipped := !*p.IsAvailable
	p.IsAvailable = &flipped
}
