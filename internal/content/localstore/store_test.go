package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s
}

func TestOpen_SeedsDefaults(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 6)

	skills, err := s.GetSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 8)

	profile, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, profile)
}

func TestOpen_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestAddProject_BilingualRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created, err := s.AddProject(ctx, domain.ProjectInput{
		TitleAR:       "مشروع تجريبي",
		TitleEN:       "Test Project",
		DescriptionAR: "وصف",
		DescriptionEN: "Description",
		Year:          "2024",
		Tags:          []string{"go", "web"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "p", created.ID[:1])

	got, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "مشروع تجريبي", got.TitleAR)
	assert.Equal(t, "Test Project", got.TitleEN)
	assert.Equal(t, created.ID, got.ID)
}

func TestAddProject_IDsUniqueWithinMillisecond(t *testing.T) {
	s := setupStore(t)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	ctx := context.Background()
	a, err := s.AddProject(ctx, domain.ProjectInput{TitleAR: "أ", TitleEN: "A", DescriptionAR: "أ", DescriptionEN: "A", Year: "2024"})
	require.NoError(t, err)
	b, err := s.AddProject(ctx, domain.ProjectInput{TitleAR: "ب", TitleEN: "B", DescriptionAR: "ب", DescriptionEN: "B", Year: "2024"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetProjects_Ordering(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	// Seed data has orders 0..5; put a new project ahead of everything.
	first, err := s.AddProject(ctx, domain.ProjectInput{
		TitleAR: "أ", TitleEN: "A", DescriptionAR: "أ", DescriptionEN: "A",
		Year: "2025", DisplayOrder: -1,
	})
	require.NoError(t, err)

	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, projects)
	assert.Equal(t, first.ID, projects[0].ID)

	for i := 1; i < len(projects); i++ {
		assert.LessOrEqual(t, projects[i-1].DisplayOrder, projects[i].DisplayOrder)
	}
}

func TestUpdateProject_OverwritesSetFieldsOnly(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created, err := s.AddProject(ctx, domain.ProjectInput{
		TitleAR: "قديم", TitleEN: "Old", DescriptionAR: "وصف", DescriptionEN: "Desc",
		Year: "2023", Tags: []string{"a", "b"},
	})
	require.NoError(t, err)

	title := "New"
	tags := []string{"c"}
	updated, err := s.UpdateProject(ctx, created.ID, domain.ProjectUpdate{
		TitleEN: &title,
		Tags:    &tags,
	})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.TitleEN)
	assert.Equal(t, "قديم", updated.TitleAR, "unset fields keep their value")
	assert.Equal(t, []string{"c"}, updated.Tags, "arrays are replaced wholesale")
	assert.Equal(t, "2023", updated.Year)
}

func TestUpdateProject_UnknownID(t *testing.T) {
	s := setupStore(t)

	title := "x"
	_, err := s.UpdateProject(context.Background(), "p404", domain.ProjectUpdate{TitleEN: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	created, err := s.AddProject(ctx, domain.ProjectInput{
		TitleAR: "أ", TitleEN: "A", DescriptionAR: "أ", DescriptionEN: "A", Year: "2024",
	})
	require.NoError(t, err)

	affected, err := s.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, affected)

	_, err = s.GetProject(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	affected, err = s.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, affected, "second delete reports nothing removed")
}

func TestUpsertSkill(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	saved, err := s.UpsertSkill(ctx, domain.Skill{Name: "Rust", Progress: 40, Category: "backend"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	saved.Progress = 70
	again, err := s.UpsertSkill(ctx, *saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	skills, err := s.GetSkills(ctx)
	require.NoError(t, err)
	var found *domain.Skill
	for i := range skills {
		if skills[i].ID == saved.ID {
			found = &skills[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 70, found.Progress)

	affected, err := s.DeleteSkill(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, affected)
}

func TestUpsertSkill_IDsUniqueWithinMillisecond(t *testing.T) {
	s := setupStore(t)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	ctx := context.Background()
	a, err := s.UpsertSkill(ctx, domain.Skill{Name: "Rust", Progress: 40, Category: "backend"})
	require.NoError(t, err)
	b, err := s.UpsertSkill(ctx, domain.Skill{Name: "Kotlin", Progress: 50, Category: "mobile"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	skills, err := s.GetSkills(ctx)
	require.NoError(t, err)
	names := map[string]bool{}
	for _, sk := range skills {
		names[sk.Name] = true
	}
	assert.True(t, names["Rust"], "first skill must survive the second add")
	assert.True(t, names["Kotlin"])
}

func TestProfileEntries_LanguageSuffixes(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProfileEntry(ctx, domain.ProfileEntry{
		Category: domain.ProfileCategoryAbout, Key: "bio_ar", Value: "نبذة",
	}))
	require.NoError(t, s.UpsertProfileEntry(ctx, domain.ProfileEntry{
		Category: domain.ProfileCategoryAbout, Key: "bio_en", Value: "Bio",
	}))
	require.NoError(t, s.UpsertProfileEntry(ctx, domain.ProfileEntry{
		Category: domain.ProfileCategoryContact, Key: "phone", Value: "+966500000000",
	}))

	entries, err := s.GetProfile(ctx)
	require.NoError(t, err)

	values := map[string]string{}
	for _, e := range entries {
		values[e.Category+"/"+e.Key] = e.Value
	}
	assert.Equal(t, "نبذة", values["about/bio_ar"])
	assert.Equal(t, "Bio", values["about/bio_en"])
	assert.Equal(t, "+966500000000", values["contact/phone"])
}

func TestUpsertProfileEntry_SuffixlessKeyAppliesToBothLanguages(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProfileEntry(ctx, domain.ProfileEntry{
		Category: domain.ProfileCategoryAbout, Key: "tagline", Value: "hello",
	}))

	entries, err := s.GetProfile(ctx)
	require.NoError(t, err)

	var ar, en bool
	for _, e := range entries {
		if e.Key == "tagline_ar" && e.Value == "hello" {
			ar = true
		}
		if e.Key == "tagline_en" && e.Value == "hello" {
			en = true
		}
	}
	assert.True(t, ar)
	assert.True(t, en)
}

func TestUpsertProfileEntry_UnknownCategory(t *testing.T) {
	s := setupStore(t)
	err := s.UpsertProfileEntry(context.Background(), domain.ProfileEntry{Category: "social", Key: "x", Value: "y"})
	require.Error(t, err)
}
