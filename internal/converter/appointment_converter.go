package converter

import (
	"healthlink/internal/delivery/dto"
	"healthlink/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response
// DTO. Reduced counterpart views are attached only when the relation was
// preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Status:    string(appointment.Status),
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Doctor.ID != uuid.Nil {
		view := &dto.AppointmentDoctorView{Name: appointment.Doctor.FullName}
		if appointment.Doctor.DoctorProfile != nil {
			view.Specialization = appointment.Doctor.DoctorProfile.Specialization
		}
		resp.Doctor = view
	}

	if appointment.Patient.ID != uuid.Nil {
		resp.Patient = &dto.AppointmentPatientView{
			Name:  appointment.Patient.FullName,
			Email: appointment.Patient.Email,
		}
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		if resp := AppointmentToResponse(&appointments[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
