package converter

import (
	"encoding/json"
	"testing"

	"healthlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserToResponse_DoctorShape(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDDoctor,
		Email:    "casey@example.com",
		Password: "$2a$10$hash",
		FullName: "Dr. Casey Moore",
		DoctorProfile: &entity.DoctorProfile{
			Specialization:  "Cardiology",
			ExperienceYears: 8,
			Fees:            decimal.NewFromInt(200),
		},
	}

	resp := UserToResponse(user)

	assert.Equal(t, "doctor", resp.Role)
	assert.NotNil(t, resp.Doctor)
	assert.Nil(t, resp.Patient)
	assert.Equal(t, "Cardiology", resp.Doctor.Specialization)
}

func TestUserToResponse_PatientShape(t *testing.T) {
	user := &entity.User{
		ID:             uuid.New(),
		RoleID:         entity.RoleIDPatient,
		Email:          "jordan@example.com",
		FullName:       "Jordan Smith",
		PatientProfile: &entity.PatientProfile{Age: 30},
	}

	resp := UserToResponse(user)

	assert.Equal(t, "patient", resp.Role)
	assert.NotNil(t, resp.Patient)
	assert.Nil(t, resp.Doctor)
	assert.Equal(t, 30, resp.Patient.Age)
}

func TestUserToResponse_NeverLeaksPassword(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDPatient,
		Email:    "jordan@example.com",
		Password: "$2a$10$hash",
		FullName: "Jordan Smith",
	}

	body, err := json.Marshal(UserToResponse(user))
	assert.NoError(t, err)
	assert.NotContains(t, string(body), "$2a$10$hash")
	assert.NotContains(t, string(body), "password")
}

func TestUserToResponse_Nil(t *testing.T) {
	assert.Nil(t, UserToResponse(nil))
}
