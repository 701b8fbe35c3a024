package middleware

import (
	"net/http"
	"strings"

	"internhub_backend/internal/auth"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

type authError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthMiddleware is the single authorization gate: it extracts the Bearer
// token, validates it, and stores the caller identity in the gin context.
// Absent/malformed headers and invalid/expired tokens are both 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authError{Message: "Authentication required"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authError{Message: "Invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		// Propagate identity to the request context for log enrichment.
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware rejects callers whose role differs from requiredRole.
// It must run after AuthMiddleware.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, authError{Message: "Access denied: no role"})
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				c.AbortWithStatusJSON(http.StatusForbidden, authError{Message: "Access denied: invalid role"})
				return
			}
			role = models.UserRole(roleStr)
		}

		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, authError{Message: "Access denied: insufficient permissions"})
			return
		}

		c.Next()
	}
}

// GetRole returns the authenticated caller's role, or "".
func GetRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get(ContextRole)
	if !exists {
		return ""
	}

	switch role := roleVal.(type) {
	case models.UserRole:
		return role
	case string:
		return models.UserRole(role)
	default:
		return ""
	}
}

// GetUserID returns the authenticated caller's user id, or "".
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
