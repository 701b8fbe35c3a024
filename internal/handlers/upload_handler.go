package handlers

import (
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/services"
	"internhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	upload := rg.Group("/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("/logo", h.Upload)
	}
}

// Upload accepts a multipart file under the "logo" field plus an optional
// "type" value, and answers with the hosted URL under the type's field name.
func (h *UploadHandler) Upload(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No file provided under the 'logo' field"))
		return
	}

	role := middleware.GetRole(c)
	uploadType := c.PostForm("type")

	result, err := h.uploadService.Upload(c.Request.Context(), role, uploadType, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.RespondOK(c, "File uploaded", gin.H{
		result.ResponseField(): result.URL,
	})
}
