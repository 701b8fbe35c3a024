package repositories

import (
	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

type SkillRepository interface {
	FindOrCreateByName(db *gorm.DB, name string) (*models.Skill, error)
	ReplaceUserSkills(db *gorm.DB, userID string, skillIDs []string) error
	ListUserSkills(db *gorm.DB, userID string) ([]models.Skill, error)
}

type SkillRepositoryImpl struct{}

func NewSkillRepository() SkillRepository {
	return &SkillRepositoryImpl{}
}

// FindOrCreateByName upserts a skill by its unique name.
func (r *SkillRepositoryImpl) FindOrCreateByName(db *gorm.DB, name string) (*models.Skill, error) {
	var skill models.Skill
	err := db.Where(models.Skill{Name: name}).FirstOrCreate(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// ReplaceUserSkills swaps the user's entire skill set. Callers run this
// inside a transaction so the delete and the inserts are atomic.
func (r *SkillRepositoryImpl) ReplaceUserSkills(db *gorm.DB, userID string, skillIDs []string) error {
	if err := db.Where("user_id = ?", userID).Delete(&models.UserSkill{}).Error; err != nil {
		return err
	}

	if len(skillIDs) == 0 {
		return nil
	}

	userSkills := make([]models.UserSkill, 0, len(skillIDs))
	for _, skillID := range skillIDs {
		userSkills = append(userSkills, models.UserSkill{
			UserID:  userID,
			SkillID: skillID,
		})
	}
	return db.Create(&userSkills).Error
}

func (r *SkillRepositoryImpl) ListUserSkills(db *gorm.DB, userID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Model(&models.Skill{}).
		Joins("JOIN user_skills ON user_skills.skill_id = skills.id").
		Where("user_skills.user_id = ?", userID).
		Order("skills.name").
		Find(&skills).Error
	return skills, err
}
