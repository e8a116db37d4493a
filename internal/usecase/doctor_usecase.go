package usecase

import (
	"bytes"
	"context"
	"errors"

	"healthlink/internal/converter"
	"healthlink/internal/delivery/dto"
	"healthlink/internal/domain/entity"
	"healthlink/internal/domain/repository"
	"healthlink/internal/infrastructure/storage"
	"healthlink/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrNoDoctorsFound    = errors.New("no doctors found")
	ErrUploadFailed      = errors.New("failed to upload profile image")
	ErrInvalidFieldValue = errors.New("numeric fields must not be negative")
)

// specialtyAll is the filter value the client sends for "no filter".
const specialtyAll = "All"

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specialty string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateProfile(ctx context.Context, doctorID uuid.UUID, patch *dto.DoctorProfilePatch, image *dto.ProfileImage) (*dto.DoctorResponse, error)
	ToggleAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	uploader          storage.Uploader
	cache             *service.DoctorCache
	auditService      service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	uploader storage.Uploader,
	cache *service.DoctorCache,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		uploader:          uploader,
		cache:             cache,
		auditService:      auditService,
	}
}

// ListDoctors returns the public listing, optionally filtered by exact
// specialization. An empty result is a distinct not-found condition, not
// a transport error.
func (u *doctorUsecase) ListDoctors(ctx context.Context, specialty string) (*dto.DoctorListResponse, error) {
	if specialty == specialtyAll {
		specialty = ""
	}

	if doctors, ok := u.cache.Get(ctx, specialty); ok {
		if len(doctors) == 0 {
			return nil, ErrNoDoctorsFound
		}
		return &dto.DoctorListResponse{Doctors: doctors, Total: len(doctors)}, nil
	}

	profiles, err := u.doctorProfileRepo.FindAll(u.db.WithContext(ctx), specialty)
	if err != nil {
		u.log.Warnf("Failed to list doctor profiles: %+v", err)
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrNoDoctorsFound
	}

	doctors := converter.DoctorProfilesToSummaries(profiles)
	u.cache.Set(ctx, specialty, doctors)

	return &dto.DoctorListResponse{Doctors: doctors, Total: len(doctors)}, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}

// UpdateProfile applies a partial update: nil patch fields keep the
// previous value, non-nil fields overwrite. An attached image is uploaded
// to object storage first and only its URL is persisted.
func (u *doctorUsecase) UpdateProfile(ctx context.Context, doctorID uuid.UUID, patch *dto.DoctorProfilePatch, image *dto.ProfileImage) (*dto.DoctorResponse, error) {
	if patch.Fees != nil && patch.Fees.IsNegative() {
		return nil, ErrInvalidFieldValue
	}
	if patch.ExperienceYears != nil && *patch.ExperienceYears < 0 {
		return nil, ErrInvalidFieldValue
	}

	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	oldValue := converter.DoctorProfileToResponse(profile)

	applyProfilePatch(profile, patch)

	if image != nil {
		url, err := u.uploader.Upload(ctx, image.FileName, bytes.NewReader(image.Content))
		if err != nil {
			u.log.Warnf("Failed to upload profile image: %+v", err)
			return nil, ErrUploadFailed
		}
		profile.ProfilePicURL = url
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorProfileToResponse(profile)
	_ = u.auditService.Record(ctx, tx, &doctorID, entity.AuditActionProfileUpdate, "doctor_profile", doctorID.String(), oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)

	return newValue, nil
}

// ToggleAvailability flips the doctor's availability flag.
func (u *doctorUsecase) ToggleAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.AvailabilityResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	wasAvailable := profile.IsAvailable != nil && *profile.IsAvailable
	profile.ToggleAvailability()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.doctorProfileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to toggle availability: %+v", err)
		return nil, err
	}

	_ = u.auditService.Record(ctx, tx, &doctorID, entity.AuditActionAvailabilityToggle, "doctor_profile", doctorID.String(),
		map[string]interface{}{"is_available": wasAvailable},
		map[string]interface{}{"is_available": *profile.IsAvailable},
	)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx)

	return &dto.AvailabilityResponse{IsAvailable: *profile.IsAvailable}, nil
}

// applyProfilePatch merges the patch field by field. A nil pointer means
// the field was not supplied and the stored value is kept; a non-nil
// pointer overwrites, including with an empty value.
func applyProfilePatch(profile *entity.DoctorProfile, patch *dto.DoctorProfilePatch) {
	if patch.Specialization != nil {
		profile.Specialization = *patch.Specialization
	}
	if patch.ExperienceYears != nil {
		profile.ExperienceYears = *patch.ExperienceYears
	}
	if patch.Clinic != nil {
		profile.Clinic = *patch.Clinic
	}
	if patch.Location != nil {
		profile.Location = *patch.Location
	}
	if patch.Fees != nil {
		profile.Fees = *patch.Fees
	}
	if patch.Contact != nil {
		profile.Contact = *patch.Contact
	}
	if patch.Languages != nil {
		profile.Languages = *patch.Languages
	}
	if patch.WorkTimings != nil {
		profile.WorkTimings = *patch.WorkTimings
	}
}
