package routes

import (
	"net/http"

	"internhub_backend/internal/handlers"
	"internhub_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every resource handler under /api/v1. When local
// storage is active, uploaded files are served back from the same prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, store storage.Storage) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
		appHandlers.Internship.RegisterRoutes(api)
		appHandlers.Application.RegisterRoutes(api)
		appHandlers.Dashboard.RegisterRoutes(api)
		appHandlers.Upload.RegisterRoutes(api)
	}

	if local, ok := store.(*storage.LocalStorage); ok {
		api.Static("/files", local.BasePath())
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
