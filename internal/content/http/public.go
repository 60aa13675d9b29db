package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/content"
	"github.com/omer2190/portfolio-backend/internal/content/domain"
	"github.com/omer2190/portfolio-backend/internal/content/view"
	"github.com/omer2190/portfolio-backend/internal/uploads"
)

// Handler serves the content routes over whichever repository backend the
// process was started with.
type Handler struct {
	repo     content.Repository
	uploader uploads.Uploader
}

func New(repo content.Repository, uploader uploads.Uploader) *Handler {
	return &Handler{repo: repo, uploader: uploader}
}

// ListProjects renders all projects in the requested language, in display
// order.
func (h *Handler) ListProjects(c *gin.Context) {
	lang := view.Normalize(c.Query("lang"))

	projects, err := h.repo.GetProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	out := make([]view.ProjectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, view.Project(p, lang))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "lang": lang, "dir": view.Dir(lang), "projects": out})
}

func (h *Handler) GetProject(c *gin.Context) {
	lang := view.Normalize(c.Query("lang"))

	p, err := h.repo.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "lang": lang, "project": view.Project(*p, lang)})
}

func (h *Handler) ListSkills(c *gin.Context) {
	skills, err := h.repo.GetSkills(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skills": skills})
}

// GetProfile renders the about/contact block for the requested language.
func (h *Handler) GetProfile(c *gin.Context) {
	lang := view.Normalize(c.Query("lang"))

	entries, err := h.repo.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "lang": lang, "profile": view.Profile(entries, lang)})
}
