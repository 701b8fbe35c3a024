package handlers

import (
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		student := profile.Group("/student")
		student.Use(middleware.RoleMiddleware(models.UserRoleStudent))
		{
			student.GET("", h.GetStudentProfile)
			student.PUT("", h.UpdateStudentProfile)
			student.PUT("/skills", h.UpdateSkills)
		}

		company := profile.Group("/company")
		company.Use(middleware.RoleMiddleware(models.UserRoleCompany))
		{
			company.GET("", h.GetCompanyProfile)
			company.PUT("", h.UpdateCompanyProfile)
		}
	}
}

func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	view, err := h.profileService.GetStudentProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", view)
}

func (h *ProfileHandler) UpdateStudentProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpdateStudentProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Profile updated", profile)
}

func (h *ProfileHandler) UpdateSkills(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSkillsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	skills, err := h.profileService.UpdateSkills(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Skills updated", skills)
}

func (h *ProfileHandler) GetCompanyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetCompanyProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", profile)
}

func (h *ProfileHandler) UpdateCompanyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpdateCompanyProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Profile updated", profile)
}
