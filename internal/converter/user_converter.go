package converter

import (
	"healthlink/internal/delivery/dto"
	"healthlink/internal/domain/entity"
)

// UserToResponse builds the role-shaped public view of a user. Exactly one
// of the Doctor/Patient variants is populated, matching the stored role;
// the password hash never leaves the entity.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:        user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Role:      user.RoleName(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	switch {
	case user.IsDoctor() && user.DoctorProfile != nil:
		resp.Doctor = DoctorProfileToView(user.DoctorProfile)
	case user.IsPatient() && user.PatientProfile != nil:
		resp.Patient = &dto.PatientView{Age: user.PatientProfile.Age}
	}

	return resp
}

func DoctorProfileToView(profile *entity.DoctorProfile) *dto.DoctorView {
	if profile == nil {
		return nil
	}
	return &dto.DoctorView{
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
