package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

func TestExport_DatedFilename(t *testing.T) {
	s := setupStore(t)
	s.now = func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC) }

	raw, name, err := s.Export()
	require.NoError(t, err)
	assert.Equal(t, "portfolio-data-2024-03-09.json", name)

	var doc document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Projects, 6)
}

func TestImport_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created, err := s.AddProject(ctx, domain.ProjectInput{
		TitleAR: "أ", TitleEN: "A", DescriptionAR: "أ", DescriptionEN: "A", Year: "2024",
	})
	require.NoError(t, err)

	raw, _, err := s.Export()
	require.NoError(t, err)

	// Wipe everything, then restore from the snapshot.
	require.NoError(t, s.Reset())
	_, err = s.GetProject(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Import(raw))
	got, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.TitleEN)
}

func TestImport_RejectsMalformedAndKeepsState(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	before, err := s.GetProjects(ctx)
	require.NoError(t, err)

	for name, payload := range map[string]string{
		"not json":       "{broken",
		"no content":     `{"unrelated": true}`,
		"bad projects":   `{"projects": 42}`,
		"empty document": ``,
	} {
		t.Run(name, func(t *testing.T) {
			require.Error(t, s.Import([]byte(payload)))

			after, err := s.GetProjects(ctx)
			require.NoError(t, err)
			assert.Equal(t, len(before), len(after), "rejected import must not change state")
		})
	}
}

func TestImport_LegacySplitShape(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	snapshot := `{
		"projects": {
			"ar": [
				{"id": "p1", "title": "متجر", "year": "2022", "description": "وصف", "tags": ["web"], "imageCount": 2},
				{"id": "p2", "title": "فندق", "year": "2023", "description": "وصف آخر"}
			],
			"en": [
				{"id": "p1", "title": "Store", "year": "2022", "description": "Desc", "tags": ["web"], "imageCount": 2}
			]
		},
		"skills": [{"id": "s1", "name": "Go", "progress": 80, "category": "backend"}],
		"contact": {"email": "x@example.com"}
	}`
	require.NoError(t, s.Import([]byte(snapshot)))

	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	p1, err := s.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "متجر", p1.TitleAR)
	assert.Equal(t, "Store", p1.TitleEN)
	assert.Equal(t, "2022", p1.Year)
	assert.Equal(t, 2, p1.ImageCount)
	assert.Equal(t, 0, p1.DisplayOrder)

	// Arabic-only record still comes through; the English side is blank.
	p2, err := s.GetProject(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "فندق", p2.TitleAR)
	assert.Empty(t, p2.TitleEN)
	assert.Equal(t, 1, p2.DisplayOrder)
}

func TestImport_LegacySplitKeepsFirstListOrder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// The english list orders the records the other way round; the arabic
	// list's positions must win.
	snapshot := `{
		"projects": {
			"ar": [
				{"id": "p1", "title": "أول", "year": "2022", "description": "وصف"},
				{"id": "p2", "title": "ثاني", "year": "2023", "description": "وصف"}
			],
			"en": [
				{"id": "p2", "title": "Second", "year": "2023", "description": "Desc"},
				{"id": "p1", "title": "First", "year": "2022", "description": "Desc"}
			]
		}
	}`
	require.NoError(t, s.Import([]byte(snapshot)))

	p1, err := s.GetProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, p1.DisplayOrder)
	assert.Equal(t, "First", p1.TitleEN)

	p2, err := s.GetProject(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 1, p2.DisplayOrder)

	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, "p2", projects[1].ID)
}

func TestReset_RestoresDefaults(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.AddProject(ctx, domain.ProjectInput{
			TitleAR: "أ", TitleEN: fmt.Sprintf("P%d", i), DescriptionAR: "أ", DescriptionEN: "A", Year: "2024",
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.Reset())

	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 6)
}
