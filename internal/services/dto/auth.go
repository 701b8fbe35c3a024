package dto

import "internhub_backend/internal/models"

// RegisterRequest is the union payload for both roles. Role-specific
// requireds are enforced in the auth service once userType is known.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8,password-strength"`
	UserType models.UserRole `json:"userType" validate:"required,is-user-role"`

	// Student fields
	FirstName      string `json:"firstName" validate:"omitempty,max=50"`
	LastName       string `json:"lastName" validate:"omitempty,max=50"`
	University     string `json:"university" validate:"omitempty,max=100"`
	Major          string `json:"major" validate:"omitempty,max=100"`
	GraduationYear int    `json:"graduationYear" validate:"omitempty,min=2024,max=2030"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`

	// Company fields
	CompanyName string             `json:"companyName" validate:"omitempty,max=100"`
	Industry    string             `json:"industry" validate:"omitempty,max=50"`
	Location    string             `json:"location" validate:"omitempty,max=100"`
	CompanySize models.CompanySize `json:"companySize" validate:"omitempty,is-company-size"`
	Website     string             `json:"website" validate:"omitempty,url"`
	Description string             `json:"description" validate:"omitempty,max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by register, login and /auth/me. Profile is a
// *models.StudentProfile or *models.CompanyProfile depending on the role.
type AuthResponse struct {
	User    *models.User `json:"user"`
	Profile interface{}  `json:"profile"`
	Token   string       `json:"token,omitempty"`
}
