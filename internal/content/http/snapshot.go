package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/content"
)

// snapshotter probes whether the active backend supports whole-state
// snapshots. Only the file-backed store does.
func (h *Handler) snapshotter(c *gin.Context) (content.Snapshotter, bool) {
	s, ok := h.repo.(content.Snapshotter)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"ok": false, "error": "snapshots are only available on the file-backed store"})
	}
	return s, ok
}

// Export streams the full content document as a dated JSON download.
func (h *Handler) Export(c *gin.Context) {
	s, ok := h.snapshotter(c)
	if !ok {
		return
	}

	raw, filename, err := s.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", raw)
}

// Import replaces the whole content document with an uploaded snapshot. The
// payload is validated in full before anything is written; a rejected import
// leaves the current state untouched.
func (h *Handler) Import(c *gin.Context) {
	s, ok := h.snapshotter(c)
	if !ok {
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "empty body"})
		return
	}

	if err := s.Import(raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": localized(c, "ملف الاستيراد غير صالح", "The import file is not valid"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": localized(c, "تم استيراد البيانات بنجاح", "Data imported successfully"),
	})
}

// Reset restores the seeded default document.
func (h *Handler) Reset(c *gin.Context) {
	s, ok := h.snapshotter(c)
	if !ok {
		return
	}

	if err := s.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": localized(c, "تم استعادة البيانات الافتراضية", "Default data restored"),
	})
}
