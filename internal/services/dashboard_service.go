package services

import (
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DashboardService interface {
	GetCompanyStats(db *gorm.DB, companyUserID string) (*dto.DashboardStats, error)
}

type DashboardServiceImpl struct {
	internshipRepo  repositories.InternshipRepository
	applicationRepo repositories.ApplicationRepository
	profileRepo     repositories.ProfileRepository
}

func NewDashboardService(
	internshipRepo repositories.InternshipRepository,
	applicationRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
) DashboardService {
	return &DashboardServiceImpl{
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
	}
}

// GetCompanyStats runs four independent counts against the caller's
// internships. Nothing is cached or derived.
func (s *DashboardServiceImpl) GetCompanyStats(db *gorm.DB, companyUserID string) (*dto.DashboardStats, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(db, companyUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	activeInternships, err := s.internshipRepo.CountActiveByCompany(db, company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalApplications, err := s.applicationRepo.CountByCompany(db, company.ID, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	pending := models.ApplicationStatusPending
	pendingReviews, err := s.applicationRepo.CountByCompany(db, company.ID, &pending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	accepted := models.ApplicationStatusAccepted
	hired, err := s.applicationRepo.CountByCompany(db, company.ID, &accepted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		ActiveInternships: activeInternships,
		TotalApplications: totalApplications,
		PendingReviews:    pendingReviews,
		Hired:             hired,
	}, nil
}
