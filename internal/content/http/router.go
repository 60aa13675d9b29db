package http

import "github.com/gin-gonic/gin"

// RegisterPublic mounts the read-only content routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.ListProjects)
	rg.GET("/projects/:id", h.GetProject)
	rg.GET("/skills", h.ListSkills)
	rg.GET("/profile", h.GetProfile)
}

// RegisterAdmin mounts the mutation routes behind the auth guard.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/projects", h.CreateProject)
	rg.PUT("/projects/:id", h.UpdateProject)
	rg.DELETE("/projects/:id", h.DeleteProject)
	rg.POST("/projects/:id/images", h.UploadImages)

	rg.POST("/skills", h.UpsertSkill)
	rg.DELETE("/skills/:id", h.DeleteSkill)

	rg.PUT("/profile", h.UpsertProfile)

	rg.GET("/export", h.Export)
	rg.POST("/import", h.Import)
	rg.POST("/reset", h.Reset)
}
