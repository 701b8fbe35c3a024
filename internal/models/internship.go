package models

import (
	"time"

	"gorm.io/datatypes"
)

type Internship struct {
	BaseModel
	CompanyID    string                      `gorm:"type:uuid;not null;index" json:"companyId"`
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `gorm:"not null" json:"description"`
	Location     string                      `gorm:"not null" json:"location"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	Duration     string                      `gorm:"not null" json:"duration"`
	Stipend      *float64                    `json:"stipend,omitempty"`

	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	StartDate           *time.Time `json:"startDate,omitempty"`
	EndDate             *time.Time `json:"endDate,omitempty"`

	// IsRemote is derived from Location on every create/update, never
	// accepted from the client.
	IsRemote bool `gorm:"default:false" json:"isRemote"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	Company      *CompanyProfile `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application   `gorm:"foreignKey:InternshipID" json:"-"`
}
