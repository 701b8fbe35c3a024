package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"userType"`
	IsVerified   bool     `gorm:"default:false" json:"isVerified"`

	// Relations: exactly one profile, matching Role.
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID" json:"studentProfile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID" json:"companyProfile,omitempty"`
	Skills         []UserSkill     `gorm:"foreignKey:UserID" json:"-"`
}
