package handler

import (
	"encoding/json"
	"net/http"

	"healthlink/internal/delivery/dto"
	"healthlink/internal/usecase"
	"healthlink/pkg/response"
	"healthlink/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Book handles booking an appointment
// @Summary Book an appointment
// @Description Book a pending appointment with a doctor for a given date and time
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDoctorID:
			response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// ListForPatient handles listing the authenticated patient's appointments
// @Summary List my appointments (patient)
// @Description List the authenticated patient's appointments with doctor details
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments/patient [get]
func (h *AppointmentHandler) ListForPatient(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListForPatient(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// ListForDoctor handles listing the authenticated doctor's appointments
// @Summary List my appointments (doctor)
// @Description List the authenticated doctor's appointments with patient details
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments/doctor [get]
func (h *AppointmentHandler) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListForDoctor(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSubjectNotFound:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
