package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required,uuid"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
}

// Response DTOs

// AppointmentDoctorView is the reduced doctor view joined onto a
// patient's appointment listing.
type AppointmentDoctorView struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// AppointmentPatientView is the reduced patient view joined onto a
// doctor's appointment listing.
type AppointmentPatientView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AppointmentResponse struct {
	ID        uuid.UUID               `json:"id"`
	PatientID uuid.UUID               `json:"patient_id"`
	DoctorID  uuid.UUID               `json:"doctor_id"`
	Date      string                  `json:"date"`
	Time      string                  `json:"time"`
	Status    string                  `json:"status"`
	Doctor    *AppointmentDoctorView  `json:"doctor,omitempty"`
	Patient   *AppointmentPatientView `json:"patient,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
