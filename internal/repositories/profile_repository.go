package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error
	FindStudentProfileByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error)
	UpdateStudentProfile(db *gorm.DB, userID string, updates map[string]interface{}) (*models.StudentProfile, error)

	CreateCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error
	FindCompanyProfileByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error)
	UpdateCompanyProfile(db *gorm.DB, userID string, updates map[string]interface{}) (*models.CompanyProfile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateStudentProfile(db *gorm.DB, profile *models.StudentProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindStudentProfileByUserID(db *gorm.DB, userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateStudentProfile applies a partial update scoped by user id and returns
// the refreshed row.
func (r *ProfileRepositoryImpl) UpdateStudentProfile(db *gorm.DB, userID string, updates map[string]interface{}) (*models.StudentProfile, error) {
	result := db.Model(&models.StudentProfile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindStudentProfileByUserID(db, userID)
}

func (r *ProfileRepositoryImpl) CreateCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCompanyProfileByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCompanyProfile(db *gorm.DB, userID string, updates map[string]interface{}) (*models.CompanyProfile, error) {
	result := db.Model(&models.CompanyProfile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindCompanyProfileByUserID(db, userID)
}
