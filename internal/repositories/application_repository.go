package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
	ErrNotPending           = errors.New("application is not pending")
)

// ApplicationFilter narrows the per-student and per-company listings.
type ApplicationFilter struct {
	Status   *models.ApplicationStatus
	Page     int
	PageSize int
}

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByStudentAndInternship(db *gorm.DB, studentID, internshipID string) (*models.Application, error)
	ListByStudent(db *gorm.DB, studentID string, filter ApplicationFilter) ([]models.Application, int64, error)
	ListByCompany(db *gorm.DB, companyID string, filter ApplicationFilter) ([]models.Application, int64, error)
	FindOwnedByCompany(db *gorm.DB, applicationID, companyID string) (*models.Application, error)
	UpdateStatusFromPending(db *gorm.DB, applicationID string, status models.ApplicationStatus) error
	CountByCompany(db *gorm.DB, companyID string, status *models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts the application; the unique (student_id, internship_id)
// index resolves racing duplicates to ErrDuplicateApplication.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	if err := db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByStudentAndInternship(db *gorm.DB, studentID, internshipID string) (*models.Application, error) {
	var application models.Application
	err := db.First(&application, "student_id = ? AND internship_id = ?", studentID, internshipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByStudent(db *gorm.DB, studentID string, filter ApplicationFilter) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{}).Where("student_id = ?", studentID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.Application
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Preload("Internship").Preload("Internship.Company").
		Order("applied_at DESC").
		Limit(filter.PageSize).Offset(offset).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// ListByCompany returns applications across all internships owned by the
// company. Ownership is part of the join, not a separate check.
func (r *ApplicationRepositoryImpl) ListByCompany(db *gorm.DB, companyID string, filter ApplicationFilter) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{}).
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("internships.company_id = ? AND internships.is_active = ?", companyID, true)
	if filter.Status != nil {
		query = query.Where("applications.status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.Application
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Preload("Student").Preload("Student.User").Preload("Internship").
		Order("applications.applied_at DESC").
		Limit(filter.PageSize).Offset(offset).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// FindOwnedByCompany resolves an application only when its internship belongs
// to the given company; anything else reads as absent.
func (r *ApplicationRepositoryImpl) FindOwnedByCompany(db *gorm.DB, applicationID, companyID string) (*models.Application, error) {
	var application models.Application
	err := db.Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("applications.id = ? AND internships.company_id = ?", applicationID, companyID).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// UpdateStatusFromPending flips the status only while it is still PENDING.
// Zero rows affected means a concurrent decision already landed.
func (r *ApplicationRepositoryImpl) UpdateStatusFromPending(db *gorm.DB, applicationID string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).
		Where("id = ? AND status = ?", applicationID, models.ApplicationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByCompany(db *gorm.DB, companyID string, status *models.ApplicationStatus) (int64, error) {
	query := db.Model(&models.Application{}).
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("internships.company_id = ?", companyID)
	if status != nil {
		query = query.Where("applications.status = ?", *status)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
