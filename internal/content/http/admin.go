package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
	"github.com/omer2190/portfolio-backend/internal/content/view"
)

// localized returns the message matching the request's language.
func localized(c *gin.Context, ar, en string) string {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetHeader("Accept-Language")
	}
	if view.Normalize(lang) == view.LangArabic {
		return ar
	}
	return en
}

// CreateProject stores a new bilingual project. Both language variants are
// required up front so a half-translated card can never be published.
func (h *Handler) CreateProject(c *gin.Context) {
	var in domain.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	in.TitleAR = strings.TrimSpace(in.TitleAR)
	in.TitleEN = strings.TrimSpace(in.TitleEN)
	in.DescriptionAR = strings.TrimSpace(in.DescriptionAR)
	in.DescriptionEN = strings.TrimSpace(in.DescriptionEN)
	in.Year = strings.TrimSpace(in.Year)

	if in.TitleAR == "" || in.TitleEN == "" || in.DescriptionAR == "" || in.DescriptionEN == "" || in.Year == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": localized(c, "يرجى ملء جميع الحقول المطلوبة", "Please fill in all required fields"),
		})
		return
	}

	p, err := h.repo.AddProject(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": localized(c, "تم إضافة المشروع بنجاح", "Project added successfully"),
		"project": p,
	})
}

// UpdateProject applies a partial overwrite to an existing project. Absent
// fields keep their stored value; present array fields replace the stored
// array wholesale.
func (h *Handler) UpdateProject(c *gin.Context) {
	var upd domain.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.repo.UpdateProject(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": localized(c, "تم تحديث المشروع بنجاح", "Project updated successfully"),
		"project": p,
	})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	affected, err := h.repo.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !affected {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": localized(c, "تم حذف المشروع بنجاح", "Project deleted successfully"),
	})
}

// UpsertSkill creates or replaces a skill. Name is the only required field.
func (h *Handler) UpsertSkill(c *gin.Context) {
	var s domain.Skill
	if err := c.ShouldBindJSON(&s); err != nil || strings.TrimSpace(s.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "skill name is required"})
		return
	}
	s.Name = strings.TrimSpace(s.Name)

	saved, err := h.repo.UpsertSkill(c.Request.Context(), s)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "skill": saved})
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	affected, err := h.repo.DeleteSkill(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !affected {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "skill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpsertProfile writes a batch of profile entries. Each entry is keyed on
// (category, key); existing values are replaced. The whole batch is validated
// before any entry is written, so a bad entry cannot leave a half-applied
// batch behind; if a write then fails mid-batch, the response names the
// entries that were persisted.
func (h *Handler) UpsertProfile(c *gin.Context) {
	var entries []domain.ProfileEntry
	if err := c.ShouldBindJSON(&entries); err != nil || len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	for _, e := range entries {
		if strings.TrimSpace(e.Category) == "" || strings.TrimSpace(e.Key) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "category and key are required"})
			return
		}
		if e.Category != domain.ProfileCategoryAbout && e.Category != domain.ProfileCategoryContact {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown profile category " + e.Category})
			return
		}
	}

	saved := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := h.repo.UpsertProfileEntry(c.Request.Context(), e); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": err.Error(),
				"saved": saved,
			})
			return
		}
		saved = append(saved, e.Category+"/"+e.Key)
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": localized(c, "تم حفظ البيانات بنجاح", "Profile saved successfully"),
	})
}
