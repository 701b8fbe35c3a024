package services

import (
	"strings"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetStudentProfile(db *gorm.DB, userID string) (*dto.StudentProfileView, error)
	UpdateStudentProfile(db *gorm.DB, userID string, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error)
	GetCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	UpdateCompanyProfile(db *gorm.DB, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error)
	UpdateSkills(db *gorm.DB, userID string, req *dto.UpdateSkillsRequest) ([]models.Skill, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	skillRepo   repositories.SkillRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	skillRepo repositories.SkillRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
	}
}

func (s *ProfileServiceImpl) GetStudentProfile(db *gorm.DB, userID string) (*dto.StudentProfileView, error) {
	profile, err := s.profileRepo.FindStudentProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	skills, err := s.skillRepo.ListUserSkills(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.StudentProfileView{
		Profile: profile,
		Skills:  skills,
	}, nil
}

// UpdateStudentProfile writes only the fields present in the request. The
// target row is always the caller's own, resolved from the token identity.
func (s *ProfileServiceImpl) UpdateStudentProfile(db *gorm.DB, userID string, req *dto.UpdateStudentProfileRequest) (*models.StudentProfile, error) {
	updates := map[string]interface{}{}
	setString(updates, "first_name", req.FirstName)
	setString(updates, "last_name", req.LastName)
	setString(updates, "university", req.University)
	setString(updates, "major", req.Major)
	setString(updates, "phone", req.Phone)
	setString(updates, "bio", req.Bio)
	setString(updates, "portfolio_url", req.PortfolioURL)
	setString(updates, "linkedin_url", req.LinkedinURL)
	setString(updates, "github_url", req.GithubURL)
	setString(updates, "resume_url", req.ResumeURL)
	setString(updates, "picture_url", req.PictureURL)
	if req.GraduationYear != nil {
		updates["graduation_year"] = *req.GraduationYear
	}

	if len(updates) == 0 {
		profile, err := s.profileRepo.FindStudentProfileByUserID(db, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrProfileNotFound) {
				return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
			}
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	profile, err := s.profileRepo.UpdateStudentProfile(db, userID, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetCompanyProfile(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCompanyProfile(db *gorm.DB, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	updates := map[string]interface{}{}
	setString(updates, "company_name", req.CompanyName)
	setString(updates, "industry", req.Industry)
	setString(updates, "location", req.Location)
	setString(updates, "company_size", req.CompanySize)
	setString(updates, "website", req.Website)
	setString(updates, "description", req.Description)
	setString(updates, "logo_url", req.LogoURL)

	if len(updates) == 0 {
		return s.GetCompanyProfile(db, userID)
	}

	profile, err := s.profileRepo.UpdateCompanyProfile(db, userID, updates)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateSkills swaps the caller's entire skill set in one transaction.
// Names are trimmed, deduplicated and upserted against the global table.
func (s *ProfileServiceImpl) UpdateSkills(db *gorm.DB, userID string, req *dto.UpdateSkillsRequest) ([]models.Skill, error) {
	if _, err := s.profileRepo.FindStudentProfileByUserID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	names := normalizeSkillNames(req.Skills)

	err := db.Transaction(func(tx *gorm.DB) error {
		skillIDs := make([]string, 0, len(names))
		for _, name := range names {
			skill, err := s.skillRepo.FindOrCreateByName(tx, name)
			if err != nil {
				return err
			}
			skillIDs = append(skillIDs, skill.ID)
		}
		return s.skillRepo.ReplaceUserSkills(tx, userID, skillIDs)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skills, err := s.skillRepo.ListUserSkills(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}

func normalizeSkillNames(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, trimmed)
	}
	return names
}

// setString adds a column update when the pointer is set. It accepts any
// string-kinded value so enum types pass through unchanged.
func setString[T ~string](updates map[string]interface{}, column string, value *T) {
	if value != nil {
		updates[column] = string(*value)
	}
}
