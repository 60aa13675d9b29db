package http

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
	"github.com/omer2190/portfolio-backend/internal/uploads"
)

// maxUploadBytes caps one multipart request. Project galleries are a handful
// of photos, not bulk media.
const maxUploadBytes = 50 << 20

// UploadImages receives a multipart batch under the "images" field, pushes
// every blob to storage, and appends the returned URLs to the project's
// gallery. The batch is all-or-nothing: if any blob fails, no URL is stored
// and the project record is untouched.
func (h *Handler) UploadImages(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "uploads are not configured"})
		return
	}

	id := c.Param("id")
	p, err := h.repo.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no images provided"})
		return
	}

	files := make([]uploads.File, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, hdr := range headers {
		f, err := hdr.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "could not read uploaded file"})
			return
		}
		opened = append(opened, f)
		files = append(files, uploads.File{
			Key:         uploads.ObjectKey(hdr.Filename),
			ContentType: hdr.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	urls, err := uploads.UploadAll(c.Request.Context(), h.uploader, files)
	if err != nil {
		log.Printf("upload batch for project %s failed: %v", id, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"ok":    false,
			"error": localized(c, "فشل رفع الصور، لم يتم حفظ أي صورة", "Image upload failed, nothing was saved"),
		})
		return
	}

	merged := append(append([]string{}, p.Images...), urls...)
	count := len(merged)
	updated, err := h.repo.UpdateProject(c.Request.Context(), id, domain.ProjectUpdate{
		Images:     &merged,
		ImageCount: &count,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": localized(c, "تم رفع الصور بنجاح", "Images uploaded successfully"),
		"urls":    urls,
		"project": updated,
	})
}
