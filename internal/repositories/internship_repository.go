package repositories

import (
	"errors"
	"strings"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInternshipNotFound = errors.New("internship not found")

// InternshipFilter narrows the public listing. Location and Search are
// case-insensitive substring matches.
type InternshipFilter struct {
	Location string
	IsRemote *bool
	Search   string
	Page     int
	PageSize int
}

type InternshipRepository interface {
	Create(db *gorm.DB, internship *models.Internship) error
	FindByID(db *gorm.DB, id string) (*models.Internship, error)
	FindActiveByID(db *gorm.DB, id string) (*models.Internship, error)
	FindOwnedByCompany(db *gorm.DB, id, companyID string) (*models.Internship, error)
	ListActive(db *gorm.DB, filter InternshipFilter) ([]models.Internship, int64, error)
	Update(db *gorm.DB, internship *models.Internship) error
	Delete(db *gorm.DB, id string) error
	CountApplications(db *gorm.DB, internshipID string) (int64, error)
	CountActiveByCompany(db *gorm.DB, companyID string) (int64, error)
}

type InternshipRepositoryImpl struct{}

func NewInternshipRepository() InternshipRepository {
	return &InternshipRepositoryImpl{}
}

func (r *InternshipRepositoryImpl) Create(db *gorm.DB, internship *models.Internship) error {
	return db.Create(internship).Error
}

func (r *InternshipRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Internship, error) {
	var internship models.Internship
	err := db.First(&internship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

// FindActiveByID is the public detail lookup: inactive rows read as absent.
func (r *InternshipRepositoryImpl) FindActiveByID(db *gorm.DB, id string) (*models.Internship, error) {
	var internship models.Internship
	err := db.Preload("Company").
		First(&internship, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

// FindOwnedByCompany resolves an internship only when it belongs to the
// given company; anything else reads as absent.
func (r *InternshipRepositoryImpl) FindOwnedByCompany(db *gorm.DB, id, companyID string) (*models.Internship, error) {
	var internship models.Internship
	err := db.First(&internship, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *InternshipRepositoryImpl) ListActive(db *gorm.DB, filter InternshipFilter) ([]models.Internship, int64, error) {
	query := db.Model(&models.Internship{}).Where("is_active = ?", true)

	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.IsRemote != nil {
		query = query.Where("is_remote = ?", *filter.IsRemote)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var internships []models.Internship
	offset := (filter.Page - 1) * filter.PageSize
	err := query.Preload("Company").
		Order("created_at DESC").
		Limit(filter.PageSize).Offset(offset).
		Find(&internships).Error
	if err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

func (r *InternshipRepositoryImpl) Update(db *gorm.DB, internship *models.Internship) error {
	result := db.Model(&models.Internship{}).Where("id = ?", internship.ID).
		Select("title", "description", "location", "requirements", "duration",
			"stipend", "application_deadline", "start_date", "end_date",
			"is_remote", "is_active").
		Updates(internship)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *InternshipRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Internship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *InternshipRepositoryImpl) CountApplications(db *gorm.DB, internshipID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("internship_id = ?", internshipID).Count(&count).Error
	return count, err
}

func (r *InternshipRepositoryImpl) CountActiveByCompany(db *gorm.DB, companyID string) (int64, error) {
	var count int64
	err := db.Model(&models.Internship{}).
		Where("company_id = ? AND is_active = ?", companyID, true).
		Count(&count).Error
	return count, err
}
