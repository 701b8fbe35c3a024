package dto

import (
	"time"

	"internhub_backend/internal/models"
)

type CreateApplicationRequest struct {
	InternshipID string `json:"internshipId" validate:"required"`
	CoverLetter  string `json:"coverLetter" validate:"omitempty,max=5000"`
}

type ListApplicationsQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// CreatedApplication is the create response: the record with the internship
// title and company name joined in.
type CreatedApplication struct {
	models.Application
	InternshipTitle string `json:"internshipTitle"`
	CompanyName     string `json:"companyName"`
}

// StudentApplicationView is one row of GET /applications/my.
type StudentApplicationView struct {
	ID          string                   `json:"id"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"appliedAt"`
	CoverLetter string                   `json:"coverLetter,omitempty"`
	Internship  struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Location string `json:"location"`
		IsRemote bool   `json:"isRemote"`
		Company  struct {
			CompanyName string `json:"companyName"`
			Location    string `json:"location"`
		} `json:"company"`
	} `json:"internship"`
}

// CompanyApplicationView is one row of GET /applications/company, flattened
// for review screens.
type CompanyApplicationView struct {
	ID              string                   `json:"id"`
	Status          models.ApplicationStatus `json:"status"`
	AppliedAt       time.Time                `json:"appliedAt"`
	CoverLetter     string                   `json:"coverLetter,omitempty"`
	StudentID       string                   `json:"studentId"`
	StudentName     string                   `json:"studentName"`
	Email           string                   `json:"email"`
	University      string                   `json:"university"`
	Major           string                   `json:"major"`
	InternshipID    string                   `json:"internshipId"`
	InternshipTitle string                   `json:"internshipTitle"`
}

type StudentApplicationList struct {
	Applications []StudentApplicationView `json:"applications"`
	Pagination   Pagination               `json:"pagination"`
}

type CompanyApplicationList struct {
	Applications []CompanyApplicationView `json:"applications"`
	Pagination   Pagination               `json:"pagination"`
}

// ApplicationStatusCheck backs the UI's "Apply" button toggle.
type ApplicationStatusCheck struct {
	HasApplied  bool                `json:"hasApplied"`
	Application *models.Application `json:"application"`
}
