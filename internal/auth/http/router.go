package http

import (
	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/auth/middleware"
)

// Register mounts the auth routes. guarded is the middleware protecting the
// operations that require an authenticated admin.
func (h *Handler) Register(rg *gin.RouterGroup, guarded gin.HandlerFunc) {
	rg.POST("/login", middleware.LoginRateLimiter(), h.Login)
	rg.GET("/session", h.Session)
	rg.POST("/logout", h.Logout)
	rg.POST("/reset-password", middleware.LoginRateLimiter(), h.ResetPassword)
	rg.POST("/change-password", guarded, h.ChangePassword)
}
