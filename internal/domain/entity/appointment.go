package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus enumerates the appointment lifecycle. Only pending is
// assigned by the booking flow; confirmed and cancelled exist as
// forward-compatible states.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment links a patient to a doctor for a requested slot. Date and
// time are opaque client-chosen strings; nothing enforces slot uniqueness,
// so two bookings for the same doctor/date/time both succeed.
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      string            `gorm:"type:varchar(20);not null" json:"date"`
	Time      string            `gorm:"type:varchar(10);not null" json:"time"`
	Status    AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting confirmation.
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// Confirm moves the appointment to the confirmed state.
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel moves the appointment to the cancelled state.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
