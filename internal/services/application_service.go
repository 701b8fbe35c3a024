package services

import (
	"net/http"
	"strings"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Create(db *gorm.DB, studentUserID string, req *dto.CreateApplicationRequest) (*dto.CreatedApplication, error)
	ListMine(db *gorm.DB, studentUserID string, query *dto.ListApplicationsQuery) (*dto.StudentApplicationList, error)
	ListForCompany(db *gorm.DB, companyUserID string, query *dto.ListApplicationsQuery) (*dto.CompanyApplicationList, error)
	GetStatus(db *gorm.DB, studentUserID, internshipID string) (*dto.ApplicationStatusCheck, error)
	UpdateStatus(db *gorm.DB, companyUserID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	internshipRepo  repositories.InternshipRepository
	profileRepo     repositories.ProfileRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	internshipRepo repositories.InternshipRepository,
	profileRepo repositories.ProfileRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		profileRepo:     profileRepo,
	}
}

// Create applies the calling student to an internship. Inactive and missing
// internships both read as 404; a second application to the same internship
// resolves to 409 through the unique pair index.
func (s *ApplicationServiceImpl) Create(db *gorm.DB, studentUserID string, req *dto.CreateApplicationRequest) (*dto.CreatedApplication, error) {
	student, err := s.studentOf(db, studentUserID)
	if err != nil {
		return nil, err
	}

	internship, err := s.internshipRepo.FindActiveByID(db, req.InternshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Internship not found or no longer accepting applications")
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		StudentID:    student.ID,
		InternshipID: internship.ID,
		Status:       models.ApplicationStatusPending,
		CoverLetter:  req.CoverLetter,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.NewConflictError("application", "You have already applied to this internship")
		}
		return nil, apperrors.InternalError(err)
	}

	result := &dto.CreatedApplication{
		Application:     *application,
		InternshipTitle: internship.Title,
	}
	if internship.Company != nil {
		result.CompanyName = internship.Company.CompanyName
	}
	return result, nil
}

func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, studentUserID string, query *dto.ListApplicationsQuery) (*dto.StudentApplicationList, error) {
	student, err := s.studentOf(db, studentUserID)
	if err != nil {
		return nil, err
	}

	filter, err := buildApplicationFilter(query)
	if err != nil {
		return nil, err
	}

	applications, total, err := s.applicationRepo.ListByStudent(db, student.ID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.StudentApplicationView, 0, len(applications))
	for _, application := range applications {
		views = append(views, newStudentApplicationView(application))
	}

	return &dto.StudentApplicationList{
		Applications: views,
		Pagination:   dto.NewPagination(filter.Page, filter.PageSize, len(views), total),
	}, nil
}

func (s *ApplicationServiceImpl) ListForCompany(db *gorm.DB, companyUserID string, query *dto.ListApplicationsQuery) (*dto.CompanyApplicationList, error) {
	company, err := s.companyOf(db, companyUserID)
	if err != nil {
		return nil, err
	}

	filter, err := buildApplicationFilter(query)
	if err != nil {
		return nil, err
	}

	applications, total, err := s.applicationRepo.ListByCompany(db, company.ID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.CompanyApplicationView, 0, len(applications))
	for _, application := range applications {
		views = append(views, newCompanyApplicationView(application))
	}

	return &dto.CompanyApplicationList{
		Applications: views,
		Pagination:   dto.NewPagination(filter.Page, filter.PageSize, len(views), total),
	}, nil
}

// GetStatus reports whether the calling student already applied to the
// internship. Absence is a regular answer, not an error.
func (s *ApplicationServiceImpl) GetStatus(db *gorm.DB, studentUserID, internshipID string) (*dto.ApplicationStatusCheck, error) {
	student, err := s.studentOf(db, studentUserID)
	if err != nil {
		return nil, err
	}

	application, err := s.applicationRepo.FindByStudentAndInternship(db, student.ID, internshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return &dto.ApplicationStatusCheck{HasApplied: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationStatusCheck{
		HasApplied:  true,
		Application: application,
	}, nil
}

// UpdateStatus decides a pending application. Ownership is enforced inside
// the lookup, and the write only lands while the row is still PENDING.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, companyUserID, applicationID string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	company, err := s.companyOf(db, companyUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.applicationRepo.FindOwnedByCompany(db, applicationID, company.ID); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	status := models.ApplicationStatus(strings.ToUpper(req.Status))
	if status != models.ApplicationStatusAccepted && status != models.ApplicationStatusRejected {
		return nil, apperrors.New(apperrors.CodeInvalidStatus, "application",
			"Status must be ACCEPTED or REJECTED", http.StatusBadRequest)
	}

	if err := s.applicationRepo.UpdateStatusFromPending(db, applicationID, status); err != nil {
		if apperrors.Is(err, repositories.ErrNotPending) {
			return nil, apperrors.New(apperrors.CodeInvalidStatus, "application",
				"Application has already been reviewed", http.StatusBadRequest)
		}
		return nil, apperrors.InternalError(err)
	}

	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *ApplicationServiceImpl) studentOf(db *gorm.DB, userID string) (*models.StudentProfile, error) {
	student, err := s.profileRepo.FindStudentProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return student, nil
}

func (s *ApplicationServiceImpl) companyOf(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	company, err := s.profileRepo.FindCompanyProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

// buildApplicationFilter clamps paging and normalizes the optional status
// filter to its canonical uppercase form.
func buildApplicationFilter(query *dto.ListApplicationsQuery) (repositories.ApplicationFilter, error) {
	page, pageSize := dto.ClampPagination(query.Page, query.Limit)
	filter := repositories.ApplicationFilter{Page: page, PageSize: pageSize}

	if query.Status != "" {
		status := models.ApplicationStatus(strings.ToUpper(query.Status))
		switch status {
		case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
			filter.Status = &status
		default:
			return filter, apperrors.NewBadRequestError("Unknown application status filter")
		}
	}
	return filter, nil
}

func newStudentApplicationView(application models.Application) dto.StudentApplicationView {
	view := dto.StudentApplicationView{
		ID:          application.ID,
		Status:      application.Status,
		AppliedAt:   application.AppliedAt,
		CoverLetter: application.CoverLetter,
	}
	if application.Internship != nil {
		view.Internship.ID = application.Internship.ID
		view.Internship.Title = application.Internship.Title
		view.Internship.Location = application.Internship.Location
		view.Internship.IsRemote = application.Internship.IsRemote
		if application.Internship.Company != nil {
			view.Internship.Company.CompanyName = application.Internship.Company.CompanyName
			view.Internship.Company.Location = application.Internship.Company.Location
		}
	}
	return view
}

func newCompanyApplicationView(application models.Application) dto.CompanyApplicationView {
	view := dto.CompanyApplicationView{
		ID:          application.ID,
		Status:      application.Status,
		AppliedAt:   application.AppliedAt,
		CoverLetter: application.CoverLetter,
	}
	if application.Student != nil {
		view.StudentID = application.Student.ID
		view.StudentName = strings.TrimSpace(application.Student.FirstName + " " + application.Student.LastName)
		view.University = application.Student.University
		view.Major = application.Student.Major
		if application.Student.User != nil {
			view.Email = application.Student.User.Email
		}
	}
	if application.Internship != nil {
		view.InternshipID = application.Internship.ID
		view.InternshipTitle = application.Internship.Title
	}
	return view
}
