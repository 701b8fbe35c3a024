package services

import (
	"strings"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InternshipService interface {
	Create(db *gorm.DB, companyUserID string, req *dto.CreateInternshipRequest) (*models.Internship, error)
	List(db *gorm.DB, query *dto.ListInternshipsQuery) (*dto.InternshipList, error)
	Get(db *gorm.DB, id string) (*dto.InternshipDetail, error)
	Update(db *gorm.DB, companyUserID, id string, req *dto.UpdateInternshipRequest) (*models.Internship, error)
	Delete(db *gorm.DB, companyUserID, id string) error
}

type InternshipServiceImpl struct {
	internshipRepo repositories.InternshipRepository
	profileRepo    repositories.ProfileRepository
}

func NewInternshipService(
	internshipRepo repositories.InternshipRepository,
	profileRepo repositories.ProfileRepository,
) InternshipService {
	return &InternshipServiceImpl{
		internshipRepo: internshipRepo,
		profileRepo:    profileRepo,
	}
}

func (s *InternshipServiceImpl) Create(db *gorm.DB, companyUserID string, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	company, err := s.companyOf(db, companyUserID)
	if err != nil {
		return nil, err
	}

	internship := &models.Internship{
		CompanyID:           company.ID,
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		Requirements:        datatypes.JSONSlice[string](req.Requirements),
		Duration:            req.Duration,
		Stipend:             req.Stipend,
		ApplicationDeadline: req.ApplicationDeadline,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		IsRemote:            deriveIsRemote(req.Location),
		IsActive:            true,
	}

	if err := s.internshipRepo.Create(db, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}

	internship.Company = company
	return internship, nil
}

func (s *InternshipServiceImpl) List(db *gorm.DB, query *dto.ListInternshipsQuery) (*dto.InternshipList, error) {
	page, pageSize := dto.ClampPagination(query.Page, query.Limit)

	filter := repositories.InternshipFilter{
		Location: query.Location,
		IsRemote: query.IsRemote,
		Search:   query.Search,
		Page:     page,
		PageSize: pageSize,
	}

	internships, total, err := s.internshipRepo.ListActive(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.InternshipList{
		Internships: internships,
		Pagination:  dto.NewPagination(page, pageSize, len(internships), total),
	}, nil
}

func (s *InternshipServiceImpl) Get(db *gorm.DB, id string) (*dto.InternshipDetail, error) {
	internship, err := s.internshipRepo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.NewNotFoundError("internship", "Internship not found")
		}
		return nil, apperrors.InternalError(err)
	}

	count, err := s.internshipRepo.CountApplications(db, internship.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.InternshipDetail{
		Internship:        *internship,
		ApplicationsCount: count,
	}, nil
}

// Update replaces every mutable field. IsActive is only touched when the
// client sends it, which is also the deactivation path.
func (s *InternshipServiceImpl) Update(db *gorm.DB, companyUserID, id string, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	company, err := s.companyOf(db, companyUserID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.FindOwnedByCompany(db, id, company.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.NewNotFoundError("internship", "Internship not found")
		}
		return nil, apperrors.InternalError(err)
	}

	internship.Title = req.Title
	internship.Description = req.Description
	internship.Location = req.Location
	internship.Requirements = datatypes.JSONSlice[string](req.Requirements)
	internship.Duration = req.Duration
	internship.Stipend = req.Stipend
	internship.ApplicationDeadline = req.ApplicationDeadline
	internship.StartDate = req.StartDate
	internship.EndDate = req.EndDate
	internship.IsRemote = deriveIsRemote(req.Location)
	if req.IsActive != nil {
		internship.IsActive = *req.IsActive
	}

	if err := s.internshipRepo.Update(db, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}

	internship.Company = company
	return internship, nil
}

// Delete removes an internship that never received applications. Anything
// with applications must be deactivated instead so students keep their
// history.
func (s *InternshipServiceImpl) Delete(db *gorm.DB, companyUserID, id string) error {
	company, err := s.companyOf(db, companyUserID)
	if err != nil {
		return err
	}

	internship, err := s.internshipRepo.FindOwnedByCompany(db, id, company.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return apperrors.NewNotFoundError("internship", "Internship not found")
		}
		return apperrors.InternalError(err)
	}

	count, err := s.internshipRepo.CountApplications(db, internship.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.NewBadRequestError("Cannot delete an internship with applications. Deactivate it instead.")
	}

	if err := s.internshipRepo.Delete(db, internship.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *InternshipServiceImpl) companyOf(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// deriveIsRemote flags a listing as remote when its location mentions the
// word, matching how listings are filtered.
func deriveIsRemote(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}
