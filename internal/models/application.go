package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application links a student to an internship. The (student, internship)
// pair is unique at the store level; racing creates resolve to one conflict.
type Application struct {
	ID           string            `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_student_internship" json:"studentId"`
	InternshipID string            `gorm:"type:uuid;not null;uniqueIndex:idx_student_internship" json:"internshipId"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CoverLetter  string            `json:"coverLetter,omitempty"`
	AppliedAt    time.Time         `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	Student    *StudentProfile `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Internship *Internship     `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
