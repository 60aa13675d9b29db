package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omer2190/portfolio-backend/internal/content/localstore"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := localstore.Open(filepath.Join(t.TempDir(), "portfolio_data.json"))
	require.NoError(t, err)

	h := New(store, nil)
	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterPublic(api)
	h.RegisterAdmin(api.Group("/admin"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListProjects_LanguageSelection(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects?lang=ar", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "ar", body["lang"])
	assert.Equal(t, "rtl", body["dir"])
	assert.NotEmpty(t, body["projects"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects", nil)
	body = decode(t, w)
	assert.Equal(t, "en", body["lang"], "missing lang defaults to english")
}

func TestGetProject_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/projects/p404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProject_RequiresBothLanguages(t *testing.T) {
	r := setupRouter(t)

	payload := map[string]any{
		"title_ar":       "متجر",
		"description_ar": "وصف",
		"year":           "2024",
		// english side missing
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects?lang=ar", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "يرجى ملء جميع الحقول المطلوبة", decode(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill in all required fields", decode(t, w)["error"])
}

func TestCreateProject_Success(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", map[string]any{
		"title_ar":       "متجر",
		"title_en":       "Store",
		"description_ar": "وصف",
		"description_en": "Desc",
		"year":           "2024",
		"tags":           []string{"web"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	project, ok := body["project"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, project["id"])
	assert.Equal(t, "Store", project["title_en"])

	// New project shows up in the public list.
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects?lang=en", nil)
	assert.Contains(t, w.Body.String(), "Store")
}

func TestUpdateProject_PartialOverwrite(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", map[string]any{
		"title_ar": "أ", "title_en": "A", "description_ar": "أ", "description_en": "A", "year": "2024",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["project"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/v1/admin/projects/"+id, map[string]any{
		"title_en": "B",
	})
	require.Equal(t, http.StatusOK, w.Code)

	project := decode(t, w)["project"].(map[string]any)
	assert.Equal(t, "B", project["title_en"])
	assert.Equal(t, "أ", project["title_ar"], "absent fields keep their value")
}

func TestUpdateProject_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/v1/admin/projects/p404", map[string]any{"title_en": "B"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", map[string]any{
		"title_ar": "أ", "title_en": "A", "description_ar": "أ", "description_en": "A", "year": "2024",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["project"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/admin/projects/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/admin/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "second delete reports not found")
}

func TestSkillLifecycle(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", map[string]any{
		"name": "Rust", "progress": 40, "category": "backend",
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := decode(t, w)["skill"].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/skills", map[string]any{"progress": 40})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name is required")

	w = doJSON(t, r, http.MethodDelete, "/api/v1/admin/skills/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/admin/skills/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileRoundTrip(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/v1/admin/profile", []map[string]any{
		{"category": "about", "key": "bio_ar", "value": "نبذة"},
		{"category": "about", "key": "bio_en", "value": "Bio"},
		{"category": "contact", "key": "email", "value": "new@example.com"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/profile?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)

	profile := decode(t, w)["profile"].(map[string]any)
	about := profile["about"].(map[string]any)
	contact := profile["contact"].(map[string]any)
	assert.Equal(t, "Bio", about["bio"])
	assert.Equal(t, "new@example.com", contact["email"])
	assert.Equal(t, "ltr", profile["dir"])
}

func TestUpsertProfile_RejectsBatchBeforeAnyWrite(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/v1/admin/profile", []map[string]any{
		{"category": "about", "key": "bio_en", "value": "Bio"},
		{"category": "social", "key": "x", "value": "y"}, // unknown category
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// The valid leading entry must not have been written.
	w = doJSON(t, r, http.MethodGet, "/api/v1/profile?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	about := decode(t, w)["profile"].(map[string]any)["about"].(map[string]any)
	assert.NotContains(t, about, "bio")
}

func TestExportImportReset(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects", map[string]any{
		"title_ar": "أ", "title_en": "Marker", "description_ar": "أ", "description_en": "A", "year": "2024",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/admin/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "portfolio-data-")
	snapshot := w.Body.Bytes()

	w = doJSON(t, r, http.MethodPost, "/api/v1/admin/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects?lang=en", nil)
	assert.NotContains(t, w.Body.String(), "Marker")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/import", bytes.NewReader(snapshot))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects?lang=en", nil)
	assert.Contains(t, w.Body.String(), "Marker")
}

func TestImport_RejectsGarbage(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/import", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadImages_NoUploaderConfigured(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/admin/projects/p1/images", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
