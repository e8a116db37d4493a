package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"healthlink/internal/delivery/dto"
	"healthlink/internal/delivery/http/middleware"
	"healthlink/internal/usecase"
	"healthlink/pkg/response"
	"healthlink/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// maxProfileImageBytes caps the in-memory part of a multipart profile update.
const maxProfileImageBytes = 10 << 20

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// ListDoctors handles the public doctor directory
// @Summary List doctors
// @Description List all doctors, optionally filtered by specialization
// @Tags Doctors
// @Produce json
// @Param specialty query string false "Specialization filter; \"All\" or empty returns everything"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")
	if specialty == "" {
		specialty = r.URL.Query().Get("specialization")
	}

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), specialty)
	if err != nil {
		switch err {
		case usecase.ErrNoDoctorsFound:
			response.NotFound(w, "No doctors found")
		default:
			response.InternalServerError(w, "Failed to list doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetDoctor handles fetching a single doctor profile
// @Summary Get doctor
// @Description Get a doctor's public profile by id
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// UpdateProfile handles partial doctor profile updates
// @Summary Update doctor profile
// @Description Update the authenticated doctor's own profile; accepts JSON or multipart form with an optional image
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [put]
func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	subjectID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if subjectID != doctorID {
		response.Forbidden(w, "Doctors may only update their own profile")
		return
	}

	patch, image, err := h.parseProfileUpdate(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(patch); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateProfile(r.Context(), doctorID, patch, image)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidFieldValue:
			response.Error(w, http.StatusBadRequest, "Invalid field value", nil)
		case usecase.ErrUploadFailed:
			response.InternalServerError(w, "Failed to upload profile image")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", doctor)
}

// ToggleAvailability handles flipping the doctor's availability flag
// @Summary Toggle availability
// @Description Flip the authenticated doctor's availability flag
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/availability [patch]
func (h *DoctorHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	subjectID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if subjectID != doctorID {
		response.Forbidden(w, "Doctors may only update their own availability")
		return
	}

	availability, err := h.doctorUsecase.ToggleAvailability(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to toggle availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}

// parseProfileUpdate accepts either a JSON body or a multipart form with
// an optional "image" file part.
func (h *DoctorHandler) parseProfileUpdate(r *http.Request) (*dto.DoctorProfilePatch, *dto.ProfileImage, error) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var patch dto.DoctorProfilePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			return nil, nil, err
		}
		return &patch, nil, nil
	}

	if err := r.ParseMultipartForm(maxProfileImageBytes); err != nil {
		return nil, nil, err
	}

	patch := patchFromForm(r)

	var image *dto.ProfileImage
	file, header, err := r.FormFile("profile_pic")
	if err == nil {
		defer file.Close()
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, nil, readErr
		}
		image = &dto.ProfileImage{
			FileName: header.Filename,
			Content:  content,
		}
	} else if err != http.ErrMissingFile {
		return nil, nil, err
	}

	return patch, image, nil
}

// patchFromForm maps present form fields onto the patch. Numeric fields
// that fail to parse are treated as absent rather than rejecting the
// whole request.
func patchFromForm(r *http.Request) *dto.DoctorProfilePatch {
	patch := &dto.DoctorProfilePatch{}

	if v, ok := formValue(r, "specialization"); ok {
		patch.Specialization = &v
	}
	if v, ok := formValue(r, "experience_years"); ok {
		if years, err := strconv.Atoi(v); err == nil {
			patch.ExperienceYears = &years
		}
	}
	if v, ok := formValue(r, "clinic"); ok {
		patch.Clinic = &v
	}
	if v, ok := formValue(r, "location"); ok {
		patch.Location = &v
	}
	if v, ok := formValue(r, "fees"); ok {
		if fees, err := decimal.NewFromString(v); err == nil {
			patch.Fees = &fees
		}
	}
	if v, ok := formValue(r, "contact"); ok {
		patch.Contact = &v
	}
	if v, ok := formValue(r, "languages"); ok {
		patch.Languages = &v
	}
	if v, ok := formValue(r, "work_timings"); ok {
		patch.WorkTimings = &v
	}

	return patch
}

func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
