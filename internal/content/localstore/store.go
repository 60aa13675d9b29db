// Package localstore keeps the whole portfolio in one JSON document on disk,
// mirroring the single-key browser storage the site originally used. Every
// mutation rewrites the document under a mutex, so a write is atomic with
// respect to other writers in this process.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

const documentVersion = "2.0.0"

type metadata struct {
	LastUpdate time.Time `json:"lastUpdate"`
	Version    string    `json:"version"`
}

// document is the persisted state tree. Projects are bilingual records;
// the legacy per-language split only survives in the import path.
type document struct {
	Projects []domain.Project             `json:"projects"`
	About    map[string]map[string]string `json:"about"`
	Skills   []domain.Skill               `json:"skills"`
	Contact  map[string]string            `json:"contact"`
	Metadata metadata                     `json:"metadata"`
}

type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// Open loads the document at path, seeding it with the default dataset when
// the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(defaultDocument(s.now())); err != nil {
			return nil, fmt.Errorf("seed data file: %w", err)
		}
		return s, nil
	}

	// Fail fast on an unreadable document instead of at first request.
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) read() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	doc.Metadata.LastUpdate = s.now()
	if doc.Metadata.Version == "" {
		doc.Metadata.Version = documentVersion
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}

// mutate runs fn against the current document and persists the result.
func (s *Store) mutate(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func sortProjects(projects []domain.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].DisplayOrder != projects[j].DisplayOrder {
			return projects[i].DisplayOrder < projects[j].DisplayOrder
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}

func (s *Store) GetProjects(ctx context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	sortProjects(doc.Projects)
	return doc.Projects, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			return &doc.Projects[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) AddProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	var created domain.Project
	err := s.mutate(func(doc *document) error {
		now := s.now()
		created = domain.Project{
			ID:            nextID(doc, now),
			TitleAR:       in.TitleAR,
			TitleEN:       in.TitleEN,
			DescriptionAR: in.DescriptionAR,
			DescriptionEN: in.DescriptionEN,
			ContentAR:     in.ContentAR,
			ContentEN:     in.ContentEN,
			Year:          in.Year,
			Tags:          in.Tags,
			ImageCount:    in.ImageCount,
			Images:        in.Images,
			Link:          in.Link,
			DisplayOrder:  in.DisplayOrder,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		// Newest first, as the original list behaved.
		doc.Projects = append([]domain.Project{created}, doc.Projects...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// nextID keeps the original timestamp-derived id scheme. Two adds in the same
// millisecond bump until the id is free.
func nextID(doc *document, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("p%d", ms)
		if !idTaken(doc, id) {
			return id
		}
		ms++
	}
}

func idTaken(doc *document, id string) bool {
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Store) UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate) (*domain.Project, error) {
	var updated domain.Project
	err := s.mutate(func(doc *document) error {
		for i := range doc.Projects {
			if doc.Projects[i].ID != id {
				continue
			}
			upd.Apply(&doc.Projects[i])
			doc.Projects[i].UpdatedAt = s.now()
			updated = doc.Projects[i]
			return nil
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(func(doc *document) error {
		kept := doc.Projects[:0]
		for _, p := range doc.Projects {
			if p.ID == id {
				removed = true
				continue
			}
			kept = append(kept, p)
		}
		doc.Projects = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *Store) GetSkills(ctx context.Context) ([]domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Skills, nil
}

func (s *Store) UpsertSkill(ctx context.Context, sk domain.Skill) (*domain.Skill, error) {
	err := s.mutate(func(doc *document) error {
		if sk.ID == "" {
			sk.ID = nextSkillID(doc, s.now())
		}
		for i := range doc.Skills {
			if doc.Skills[i].ID == sk.ID {
				doc.Skills[i] = sk
				return nil
			}
		}
		doc.Skills = append(doc.Skills, sk)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sk, nil
}

// nextSkillID mints a timestamp-derived id, bumping until free so two adds in
// the same millisecond cannot collide and overwrite each other.
func nextSkillID(doc *document, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := fmt.Sprintf("s%d", ms)
		if !skillIDTaken(doc, id) {
			return id
		}
		ms++
	}
}

func skillIDTaken(doc *document, id string) bool {
	for i := range doc.Skills {
		if doc.Skills[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Store) DeleteSkill(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.mutate(func(doc *document) error {
		kept := doc.Skills[:0]
		for _, sk := range doc.Skills {
			if sk.ID == id {
				removed = true
				continue
			}
			kept = append(kept, sk)
		}
		doc.Skills = kept
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// GetProfile flattens the nested about/contact maps to (category, key, value)
// rows. About values carry an _ar/_en suffix on the key, contact values are
// language-neutral.
func (s *Store) GetProfile(ctx context.Context) ([]domain.ProfileEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	var entries []domain.ProfileEntry
	for _, lang := range []string{"ar", "en"} {
		for key, value := range doc.About[lang] {
			entries = append(entries, domain.ProfileEntry{
				Category: domain.ProfileCategoryAbout,
				Key:      key + "_" + lang,
				Value:    value,
			})
		}
	}
	for key, value := range doc.Contact {
		entries = append(entries, domain.ProfileEntry{
			Category: domain.ProfileCategoryContact,
			Key:      key,
			Value:    value,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Category != entries[j].Category {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Key < entries[j].Key
	})
	return entries, nil
}

func (s *Store) UpsertProfileEntry(ctx context.Context, e domain.ProfileEntry) error {
	if e.Key == "" {
		return fmt.Errorf("profile key required")
	}
	return s.mutate(func(doc *document) error {
		switch e.Category {
		case domain.ProfileCategoryAbout:
			key, langs := splitLangKey(e.Key)
			for _, lang := range langs {
				if doc.About == nil {
					doc.About = map[string]map[string]string{}
				}
				if doc.About[lang] == nil {
					doc.About[lang] = map[string]string{}
				}
				doc.About[lang][key] = e.Value
			}
		case domain.ProfileCategoryContact:
			if doc.Contact == nil {
				doc.Contact = map[string]string{}
			}
			doc.Contact[e.Key] = e.Value
		default:
			return fmt.Errorf("unknown profile category %q", e.Category)
		}
		return nil
	})
}

// splitLangKey resolves "name_ar" to ("name", [ar]). A key without a language
// suffix applies to both variants.
func splitLangKey(key string) (string, []string) {
	if strings.HasSuffix(key, "_ar") {
		return strings.TrimSuffix(key, "_ar"), []string{"ar"}
	}
	if strings.HasSuffix(key, "_en") {
		return strings.TrimSuffix(key, "_en"), []string{"en"}
	}
	return key, []string{"ar", "en"}
}
