package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthlink/internal/delivery/dto"
	"healthlink/internal/delivery/http/middleware"
	"healthlink/internal/usecase"
	"healthlink/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAppointmentUsecase struct {
	bookFn           func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	listForPatientFn func(ctx context.Context) (*dto.AppointmentListResponse, error)
	listForDoctorFn  func(ctx context.Context) (*dto.AppointmentListResponse, error)
}

func (s *stubAppointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.bookFn(ctx, req)
}

func (s *stubAppointmentUsecase) ListForPatient(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.listForPatientFn(ctx)
}

func (s *stubAppointmentUsecase) ListForDoctor(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return s.listForDoctorFn(ctx)
}

func withSubject(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestAppointmentHandler_Book(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			subjectID, ok := middleware.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			return &dto.AppointmentResponse{
				ID:        uuid.New(),
				PatientID: subjectID,
				DoctorID:  uuid.MustParse(req.DoctorID),
				Date:      req.Date,
				Time:      req.Time,
				Status:    "pending",
				CreatedAt: time.Now(),
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", jsonBody(t, dto.BookAppointmentRequest{
		DoctorID: doctorID.String(),
		Date:     "2026-09-15",
		Time:     "10:30",
	}))
	rec := httptest.NewRecorder()

	h.Book(rec, withSubject(req, patientID))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool                    `json:"success"`
		Data    dto.AppointmentResponse `json:"data"`
	}
	assert.NoError(t, decodeJSON(rec, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "pending", envelope.Data.Status)
	assert.Equal(t, patientID, envelope.Data.PatientID)
	assert.Equal(t, doctorID, envelope.Data.DoctorID)
}

// Booking the same doctor/date/time twice is not a conflict: both requests
// succeed with distinct appointment ids.
func TestAppointmentHandler_Book_SameSlotTwice(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return &dto.AppointmentResponse{
				ID:       uuid.New(),
				DoctorID: uuid.MustParse(req.DoctorID),
				Date:     req.Date,
				Time:     req.Time,
				Status:   "pending",
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	body := dto.BookAppointmentRequest{
		DoctorID: doctorID.String(),
		Date:     "2026-09-15",
		Time:     "10:30",
	}

	ids := make(map[uuid.UUID]bool)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", jsonBody(t, body))
		rec := httptest.NewRecorder()

		h.Book(rec, withSubject(req, patientID))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope struct {
			Data dto.AppointmentResponse `json:"data"`
		}
		assert.NoError(t, decodeJSON(rec, &envelope))
		ids[envelope.Data.ID] = true
	}

	assert.Len(t, ids, 2)
}

func TestAppointmentHandler_Book_MissingFields(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", jsonBody(t, dto.BookAppointmentRequest{
		DoctorID: uuid.New().String(),
		Date:     "2026-09-15",
	}))
	rec := httptest.NewRecorder()

	h.Book(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandler_Book_InvalidDoctorID(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrInvalidDoctorID
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", jsonBody(t, dto.BookAppointmentRequest{
		DoctorID: uuid.New().String(),
		Date:     "2026-09-15",
		Time:     "10:30",
	}))
	rec := httptest.NewRecorder()

	h.Book(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandler_Book_NoSubject(t *testing.T) {
	stub := &stubAppointmentUsecase{
		bookFn: func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrSubjectNotFound
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", jsonBody(t, dto.BookAppointmentRequest{
		DoctorID: uuid.New().String(),
		Date:     "2026-09-15",
		Time:     "10:30",
	}))
	rec := httptest.NewRecorder()

	h.Book(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAppointmentHandler_ListForPatient(t *testing.T) {
	stub := &stubAppointmentUsecase{
		listForPatientFn: func(ctx context.Context) (*dto.AppointmentListResponse, error) {
			return &dto.AppointmentListResponse{
				Appointments: []dto.AppointmentResponse{
					{
						ID:     uuid.New(),
						Status: "pending",
						Doctor: &dto.AppointmentDoctorView{Name: "Dr. Casey Moore", Specialization: "Cardiology"},
					},
				},
				Total: 1,
			}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/patient", nil)
	rec := httptest.NewRecorder()

	h.ListForPatient(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                        `json:"success"`
		Data    dto.AppointmentListResponse `json:"data"`
	}
	assert.NoError(t, decodeJSON(rec, &envelope))
	assert.Equal(t, 1, envelope.Data.Total)
	assert.Equal(t, "Dr. Casey Moore", envelope.Data.Appointments[0].Doctor.Name)
}

func TestAppointmentHandler_ListForDoctor_Empty(t *testing.T) {
	stub := &stubAppointmentUsecase{
		listForDoctorFn: func(ctx context.Context) (*dto.AppointmentListResponse, error) {
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}, Total: 0}, nil
		},
	}
	h := NewAppointmentHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/doctor", nil)
	rec := httptest.NewRecorder()

	h.ListForDoctor(rec, withSubject(req, uuid.New()))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                        `json:"success"`
		Data    dto.AppointmentListResponse `json:"data"`
	}
	assert.NoError(t, decodeJSON(rec, &envelope))
	assert.Equal(t, 0, envelope.Data.Total)
}
