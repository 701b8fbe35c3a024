package handlers

import (
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	*BaseHandler
	internshipService services.InternshipService
}

func NewInternshipHandler(base *BaseHandler, internshipService services.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		BaseHandler:       base,
		internshipService: internshipService,
	}
}

func (h *InternshipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	internships := rg.Group("/internships")
	{
		internships.GET("", h.List)
		internships.GET("/:id", h.Get)
	}

	owned := rg.Group("/internships")
	owned.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		owned.POST("", h.Create)
		owned.PUT("/:id", h.Update)
		owned.DELETE("/:id", h.Delete)
	}
}

func (h *InternshipHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	internship, err := h.internshipService.Create(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondCreated(c, "Internship created", internship)
}

func (h *InternshipHandler) List(c *gin.Context) {
	var query dto.ListInternshipsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	db := h.GetDB(c)

	list, err := h.internshipService.List(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", list)
}

func (h *InternshipHandler) Get(c *gin.Context) {
	db := h.GetDB(c)

	detail, err := h.internshipService.Get(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "", detail)
}

func (h *InternshipHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	internship, err := h.internshipService.Update(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Internship updated", internship)
}

func (h *InternshipHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.internshipService.Delete(db, userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "Internship deleted", nil)
}
