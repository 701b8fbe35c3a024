package services

import (
	"internhub_backend/internal/config"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/storage"
)

// ServiceContainer wires every service over the shared stateless
// repositories. Handlers receive it whole.
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	Internship  InternshipService
	Application ApplicationService
	Dashboard   DashboardService
	Upload      UploadService
}

func NewServiceContainer(store storage.Storage, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	skillRepo := repositories.NewSkillRepository()
	internshipRepo := repositories.NewInternshipRepository()
	applicationRepo := repositories.NewApplicationRepository()

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo, profileRepo),
		Profile:     NewProfileService(profileRepo, skillRepo),
		Internship:  NewInternshipService(internshipRepo, profileRepo),
		Application: NewApplicationService(applicationRepo, internshipRepo, profileRepo),
		Dashboard:   NewDashboardService(internshipRepo, applicationRepo, profileRepo),
		Upload:      NewUploadService(store, cfg),
	}
}
