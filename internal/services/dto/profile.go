package dto

import "internhub_backend/internal/models"

// UpdateStudentProfileRequest is a partial update: nil fields are left
// untouched.
type UpdateStudentProfileRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,min=1,max=50"`
	LastName       *string `json:"lastName" validate:"omitempty,min=1,max=50"`
	University     *string `json:"university" validate:"omitempty,min=1,max=100"`
	Major          *string `json:"major" validate:"omitempty,min=1,max=100"`
	GraduationYear *int    `json:"graduationYear" validate:"omitempty,min=2024,max=2030"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	Bio            *string `json:"bio" validate:"omitempty,max=2000"`
	PortfolioURL   *string `json:"portfolioUrl" validate:"omitempty,url"`
	LinkedinURL    *string `json:"linkedinUrl" validate:"omitempty,url"`
	GithubURL      *string `json:"githubUrl" validate:"omitempty,url"`
	ResumeURL      *string `json:"resumeUrl" validate:"omitempty,url"`
	PictureURL     *string `json:"profilePictureUrl" validate:"omitempty,url"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"companyName" validate:"omitempty,min=1,max=100"`
	Industry    *string `json:"industry" validate:"omitempty,min=1,max=50"`
	Location    *string `json:"location" validate:"omitempty,min=1,max=100"`
	CompanySize *string `json:"companySize" validate:"omitempty,is-company-size"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	LogoURL     *string `json:"logoUrl" validate:"omitempty,url"`
}

// UpdateSkillsRequest replaces the caller's entire skill set; an empty list
// clears it.
type UpdateSkillsRequest struct {
	Skills []string `json:"skills" validate:"dive,required,max=50"`
}

// StudentProfileView pairs the profile row with its resolved skill names.
type StudentProfileView struct {
	Profile *models.StudentProfile `json:"profile"`
	Skills  []models.Skill         `json:"skills"`
}
