package handlers

import (
	"internhub_backend/internal/services"
	"internhub_backend/internal/validator"
)

// AppHandlers groups every resource handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Internship  *InternshipHandler
	Application *ApplicationHandler
	Dashboard   *DashboardHandler
	Upload      *UploadHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, container.Auth),
		Profile:     NewProfileHandler(base, container.Profile),
		Internship:  NewInternshipHandler(base, container.Internship),
		Application: NewApplicationHandler(base, container.Application),
		Dashboard:   NewDashboardHandler(base, container.Dashboard),
		Upload:      NewUploadHandler(base, container.Upload),
	}
}
