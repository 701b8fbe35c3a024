package services

import (
	"net/http"
	"strings"

	"internhub_backend/internal/auth"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(db *gorm.DB, userID string) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register creates the user and its role-matching profile in one
// transaction, then issues a token.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validateRoleFields(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(db, email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.NewConflictError("auth", "An account with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         req.UserType,
	}

	var profile interface{}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		if req.UserType == models.UserRoleStudent {
			studentProfile := &models.StudentProfile{
				UserID:         user.ID,
				FirstName:      req.FirstName,
				LastName:       req.LastName,
				University:     req.University,
				Major:          req.Major,
				GraduationYear: req.GraduationYear,
				Phone:          req.Phone,
			}
			if err := s.profileRepo.CreateStudentProfile(tx, studentProfile); err != nil {
				return err
			}
			profile = studentProfile
			return nil
		}

		companyProfile := &models.CompanyProfile{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
			Location:    req.Location,
			CompanySize: req.CompanySize,
			Website:     req.Website,
			Description: req.Description,
		}
		if err := s.profileRepo.CreateCompanyProfile(tx, companyProfile); err != nil {
			return err
		}
		profile = companyProfile
		return nil
	})
	if err != nil {
		// A racing registration can still hit the unique index inside the
		// transaction.
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("auth", "An account with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:    user,
		Profile: profile,
		Token:   token,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, invalidCredentials()
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:    user,
		Profile: s.profileOf(user),
		Token:   token,
	}, nil
}

// GetCurrentUser resolves the token subject back into {user, profile}.
func (s *AuthServiceImpl) GetCurrentUser(db *gorm.DB, userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User:    user,
		Profile: s.profileOf(user),
	}, nil
}

func (s *AuthServiceImpl) profileOf(user *models.User) interface{} {
	if user.Role == models.UserRoleStudent {
		return user.StudentProfile
	}
	return user.CompanyProfile
}

// validateRoleFields enforces the per-role required fields the shared
// RegisterRequest cannot express with tags alone.
func (s *AuthServiceImpl) validateRoleFields(req *dto.RegisterRequest) error {
	fieldErrors := make(map[string]string)

	switch req.UserType {
	case models.UserRoleStudent:
		if req.FirstName == "" {
			fieldErrors["firstName"] = "First name is required"
		}
		if req.LastName == "" {
			fieldErrors["lastName"] = "Last name is required"
		}
		if req.University == "" {
			fieldErrors["university"] = "University is required"
		}
		if req.Major == "" {
			fieldErrors["major"] = "Major is required"
		}
		if req.GraduationYear == 0 {
			fieldErrors["graduationYear"] = "Graduation year is required"
		}
	case models.UserRoleCompany:
		if req.CompanyName == "" {
			fieldErrors["companyName"] = "Company name is required"
		}
		if req.Industry == "" {
			fieldErrors["industry"] = "Industry is required"
		}
		if req.Location == "" {
			fieldErrors["location"] = "Location is required"
		}
		if req.CompanySize == "" {
			fieldErrors["companySize"] = "Company size is required"
		}
	}

	if len(fieldErrors) > 0 {
		return apperrors.ValidationError(fieldErrors)
	}
	return nil
}

func invalidCredentials() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}
