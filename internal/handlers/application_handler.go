package handlers

import (
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		student := applications.Group("")
		student.Use(middleware.RoleMiddleware(models.UserRoleStudent))
		{
			student.POST("", h.Create)
			student.GET("/my", h.ListMine)
			student.GET("/status/:internshipId", h.GetStatus)
		}

		company := applications.Group("")
		company.Use(middleware.RoleMiddleware(models.UserRoleCompany))
		{
			company.GET("/company", h.ListForCompany)
			company.PATCH("/:id/status", h.UpdateStatus)
		}
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, "Application submitted", application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListApplicationsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	list, err := h.applicationService.ListMine(db, userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", list)
}

func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListApplicationsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	list, err := h.applicationService.ListForCompany(db, userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", list)
}

func (h *ApplicationHandler) GetStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	check, err := h.applicationService.GetStatus(db, userID, c.Param("internshipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", check)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	application, err := h.applicationService.UpdateStatus(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Application status updated", application)
}
