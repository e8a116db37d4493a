package converter

import (
	"healthlink/internal/delivery/dto"
	"healthlink/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity (with User
// preloaded) to the full public DoctorResponse.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              profile.UserID,
		Name:            profile.User.FullName,
		Email:           profile.User.Email,
		Specialization:  profile.Specialization,
		ExperienceYears: profile.ExperienceYears,
		Clinic:          profile.Clinic,
		Location:        profile.Location,
		Fees:            profile.Fees,
		Contact:         profile.Contact,
		Languages:       profile.Languages,
		WorkTimings:     profile.WorkTimings,
		IsAvailable:     profile.IsAvailable,
		ProfilePicURL:   profile.ProfilePicURL,
	}
}

// DoctorProfilesToSummaries builds the reduced listing view.
func DoctorProfilesToSummaries(profiles []entity.DoctorProfile) []dto.DoctorSummary {
	summaries := make([]dto.DoctorSummary, len(profiles))
	for i, profile := range profiles {
		summaries[i] = dto.DoctorSummary{
			ID:              profile.UserID,
			Name:            profile.User.FullName,
			Specialization:  profile.Specialization,
			ExperienceYears: profile.ExperienceYears,
			Fees:            profile.Fees,
			IsAvailable:     profile.IsAvailable,
			ProfilePicURL:   profile.ProfilePicURL,
		}
	}
	return summaries
}
