package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a record does not exist in the backend.
	ErrNotFound = errors.New("record not found")
)

// Project is a showcased work item. Both language variants live on one record,
// so a project is always written atomically and the Arabic and English sides
// can never diverge in id.
type Project struct {
	ID            string    `json:"id"`
	TitleAR       string    `json:"title_ar"`
	TitleEN       string    `json:"title_en"`
	DescriptionAR string    `json:"description_ar"`
	DescriptionEN string    `json:"description_en"`
	ContentAR     string    `json:"content_ar,omitempty"`
	ContentEN     string    `json:"content_en,omitempty"`
	Year          string    `json:"year"`
	Tags          []string  `json:"tags"`
	ImageCount    int       `json:"image_count"`
	Images        []string  `json:"images"`
	Link          string    `json:"link,omitempty"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectInput carries the caller-supplied fields for a new project. The id
// and timestamps are assigned by the repository.
type ProjectInput struct {
	TitleAR       string   `json:"title_ar"`
	TitleEN       string   `json:"title_en"`
	DescriptionAR string   `json:"description_ar"`
	DescriptionEN string   `json:"description_en"`
	ContentAR     string   `json:"content_ar"`
	ContentEN     string   `json:"content_en"`
	Year          string   `json:"year"`
	Tags          []string `json:"tags"`
	ImageCount    int      `json:"image_count"`
	Images        []string `json:"images"`
	Link          string   `json:"link"`
	DisplayOrder  int      `json:"display_order"`
}

// ProjectUpdate is a partial update. Nil fields are left untouched; set fields
// replace the stored value wholesale, array fields included. Appending to
// Images is the caller's job: fetch, merge, then update.
type ProjectUpdate struct {
	TitleAR       *string   `json:"title_ar"`
	TitleEN       *string   `json:"title_en"`
	DescriptionAR *string   `json:"description_ar"`
	DescriptionEN *string   `json:"description_en"`
	ContentAR     *string   `json:"content_ar"`
	ContentEN     *string   `json:"content_en"`
	Year          *string   `json:"year"`
	Tags          *[]string `json:"tags"`
	ImageCount    *int      `json:"image_count"`
	Images        *[]string `json:"images"`
	Link          *string   `json:"link"`
	DisplayOrder  *int      `json:"display_order"`
}

// Apply overwrites the set fields of u onto p.
func (u ProjectUpdate) Apply(p *Project) {
	if u.TitleAR != nil {
		p.TitleAR = *u.TitleAR
	}
	if u.TitleEN != nil {
		p.TitleEN = *u.TitleEN
	}
	if u.DescriptionAR != nil {
		p.DescriptionAR = *u.DescriptionAR
	}
	if u.DescriptionEN != nil {
		p.DescriptionEN = *u.DescriptionEN
	}
	if u.ContentAR != nil {
		p.ContentAR = *u.ContentAR
	}
	if u.ContentEN != nil {
		p.ContentEN = *u.ContentEN
	}
	if u.Year != nil {
		p.Year = *u.Year
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.ImageCount != nil {
		p.ImageCount = *u.ImageCount
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Link != nil {
		p.Link = *u.Link
	}
	if u.DisplayOrder != nil {
		p.DisplayOrder = *u.DisplayOrder
	}
}

// Skill is a named competency with a 0-100 progress indicator. Progress is
// caller-trusted, not clamped.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
}

// ProfileEntry is one biographical key/value pair. Entries are unique on
// (category, key). Language-specific values carry an _ar/_en key suffix,
// e.g. ("about", "name_ar").
type ProfileEntry struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

const (
	ProfileCategoryAbout   = "about"
	ProfileCategoryContact = "contact"
)
