package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

// Export serializes the whole document, pretty-printed, and returns the
// dated download name the dashboard always used.
func (s *Store) Export() ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, "", err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encode snapshot: %w", err)
	}
	name := fmt.Sprintf("portfolio-data-%s.json", s.now().Format("2006-01-02"))
	return raw, name, nil
}

// importDocument defers the projects field so both the current shape
// (a flat list of bilingual records) and the legacy per-language split
// {"ar": [...], "en": [...]} can be accepted.
type importDocument struct {
	Projects json.RawMessage              `json:"projects"`
	About    map[string]map[string]string `json:"about"`
	Skills   []domain.Skill               `json:"skills"`
	Contact  map[string]string            `json:"contact"`
	Metadata metadata                     `json:"metadata"`
}

// legacyProject is the pre-bilingual record stored once per language.
type legacyProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	ImageCount  int      `json:"imageCount"`
	Images      []string `json:"images"`
	Link        string   `json:"link"`
}

type legacySplit struct {
	AR []legacyProject `json:"ar"`
	EN []legacyProject `json:"en"`
}

// Import replaces the stored document with the given snapshot. The raw input
// is fully validated before anything is written; on any parse failure the
// prior state stays untouched and the error is returned.
func (s *Store) Import(raw []byte) error {
	var in importDocument
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	if in.Projects == nil && in.About == nil && in.Skills == nil && in.Contact == nil {
		return fmt.Errorf("invalid snapshot: no recognizable content")
	}

	projects, err := decodeProjects(in.Projects)
	if err != nil {
		return err
	}

	doc := &document{
		Projects: projects,
		About:    in.About,
		Skills:   in.Skills,
		Contact:  in.Contact,
		Metadata: in.Metadata,
	}
	doc.Metadata.Version = documentVersion

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

func decodeProjects(raw json.RawMessage) ([]domain.Project, error) {
	if raw == nil {
		return nil, nil
	}

	var projects []domain.Project
	if err := json.Unmarshal(raw, &projects); err == nil {
		return projects, nil
	}

	var split legacySplit
	if err := json.Unmarshal(raw, &split); err != nil {
		return nil, fmt.Errorf("invalid snapshot: unrecognized projects shape")
	}
	return mergeLegacy(split), nil
}

// mergeLegacy pairs the per-language records by id into bilingual records.
// An id present in only one list still yields a record; the presentation
// layer's language fallback covers the missing side.
func mergeLegacy(split legacySplit) []domain.Project {
	byID := map[string]*domain.Project{}
	var order []string

	// track returns the record for id, creating it at the given list position
	// on first sight. The position sticks: when the two language lists order
	// records differently, the first list seen wins.
	track := func(id string, position int) *domain.Project {
		if p, ok := byID[id]; ok {
			return p
		}
		p := &domain.Project{ID: id, DisplayOrder: position}
		byID[id] = p
		order = append(order, id)
		return p
	}

	for i, lp := range split.AR {
		p := track(lp.ID, i)
		p.TitleAR = lp.Title
		p.DescriptionAR = lp.Description
		p.ContentAR = lp.Content
		fillShared(p, lp)
	}
	for i, lp := range split.EN {
		p := track(lp.ID, i)
		p.TitleEN = lp.Title
		p.DescriptionEN = lp.Description
		p.ContentEN = lp.Content
		fillShared(p, lp)
	}

	out := make([]domain.Project, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// fillShared copies the language-neutral fields, first value seen wins.
func fillShared(p *domain.Project, lp legacyProject) {
	if p.Year == "" {
		p.Year = lp.Year
	}
	if p.Tags == nil {
		p.Tags = lp.Tags
	}
	if p.ImageCount == 0 {
		p.ImageCount = lp.ImageCount
	}
	if p.Images == nil {
		p.Images = lp.Images
	}
	if p.Link == "" {
		p.Link = lp.Link
	}
}

// Reset restores the seeded default dataset.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(defaultDocument(s.now()))
}
