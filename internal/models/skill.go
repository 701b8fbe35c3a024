package models

// Skill is a globally deduplicated skill name.
type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// UserSkill links users to skills (replace-all semantics on update).
type UserSkill struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill" json:"userId"`
	SkillID string `gorm:"type:uuid;not null;uniqueIndex:idx_user_skill" json:"skillId"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
