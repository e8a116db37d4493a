package usecase

import (
	"context"
	"errors"
	"strings"

	"healthlink/internal/converter"
	"healthlink/internal/delivery/dto"
	"healthlink/internal/domain/entity"
	"healthlink/internal/domain/repository"
	"healthlink/internal/service"
	"healthlink/pkg/jwt"
	"healthlink/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleMismatch       = errors.New("role mismatch")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	roleRepo           repository.RoleRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	jwtService         *jwt.Service
	auditService       service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	jwtService *jwt.Service,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		roleRepo:           roleRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		jwtService:         jwtService,
		auditService:       auditService,
	}
}

// normalizeEmail lower-cases the address so the unique index on users.email
// enforces case-insensitive uniqueness.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the credential record plus the role-matching profile in
// one transaction. The password is hashed exactly once, here; no later
// save path touches the password column, so a hash is never re-hashed.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Fees.IsNegative() {
		return nil, ErrInvalidFieldValue
	}

	role, err := u.roleRepo.FindByName(u.db.WithContext(ctx), strings.ToLower(req.Role))
	if err != nil {
		u.log.Warnf("Failed to find role: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    normalizeEmail(req.Email),
		Password: hashedPassword,
		FullName: req.Name,
		RoleID:   role.ID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	switch role.ID {
	case entity.RoleIDDoctor:
		profile := &entity.DoctorProfile{
			UserID:          user.ID,
			Specialization:  req.Specialization,
			ExperienceYears: req.ExperienceYears,
			Clinic:          req.Clinic,
			Location:        req.Location,
			Fees:            req.Fees,
			Contact:         req.Contact,
			Languages:       req.Languages,
			WorkTimings:     req.WorkTimings,
		}
		if err := u.doctorProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return nil, err
		}
	case entity.RoleIDPatient:
		profile := &entity.PatientProfile{
			UserID: user.ID,
			Age:    req.Age,
		}
		if err := u.patientProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}
	}

	_ = u.auditService.Record(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), nil, map[string]interface{}{
		"email": user.Email,
		"role":  role.RoleName,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Public-safe view only: no profile data, never the hash.
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.FullName,
		Email:     user.Email,
		Role:      role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Login verifies credentials and issues a token. An expected role, when
// supplied, must match the stored role before the password is checked.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Role != "" && !strings.EqualFold(req.Role, user.RoleName()) {
		return nil, ErrRoleMismatch
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.Issue(user.ID, user.RoleName())
	if err != nil {
		u.log.Warnf("Failed to issue token: %+v", err)
		return nil, err
	}

	_ = u.auditService.Record(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil, nil)

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.Expiry().Seconds()),
		User:      converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
