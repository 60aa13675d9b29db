// Package view assembles render-ready, single-language view models from the
// bilingual records. It is a pure function of record + language: switching
// the language re-selects fields, it never refetches.
package view

import (
	"fmt"
	"strings"

	"github.com/omer2190/portfolio-backend/internal/content/domain"
)

const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Normalize maps any input to a supported language tag. Anything that is not
// Arabic renders as English.
func Normalize(lang string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(lang)), LangArabic) {
		return LangArabic
	}
	return LangEnglish
}

// Dir returns the document text direction for a language.
func Dir(lang string) string {
	if Normalize(lang) == LangArabic {
		return "rtl"
	}
	return "ltr"
}

// Gallery splits the resolved image list into a primary image and thumbnails.
type Gallery struct {
	Primary    string   `json:"primary,omitempty"`
	Thumbnails []string `json:"thumbnails,omitempty"`
}

type ProjectView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content,omitempty"`
	Year        string   `json:"year"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link,omitempty"`
	Dir         string   `json:"dir"`
	Gallery     Gallery  `json:"gallery"`
}

// Project selects the requested language's fields from a bilingual record.
// When a field is blank in the selected language, the other language's text
// is shown instead of a blank card.
func Project(p domain.Project, lang string) ProjectView {
	lang = Normalize(lang)

	v := ProjectView{
		ID:   p.ID,
		Year: p.Year,
		Tags: p.Tags,
		Link: p.Link,
		Dir:  Dir(lang),
	}
	if lang == LangArabic {
		v.Title = fallback(p.TitleAR, p.TitleEN)
		v.Description = fallback(p.DescriptionAR, p.DescriptionEN)
		v.Content = fallback(p.ContentAR, p.ContentEN)
	} else {
		v.Title = fallback(p.TitleEN, p.TitleAR)
		v.Description = fallback(p.DescriptionEN, p.DescriptionAR)
		v.Content = fallback(p.ContentEN, p.ContentAR)
	}

	images := resolveImages(p)
	if len(images) > 0 {
		v.Gallery.Primary = images[0]
		v.Gallery.Thumbnails = images[1:]
	}
	return v
}

func fallback(preferred, other string) string {
	if strings.TrimSpace(preferred) != "" {
		return preferred
	}
	return other
}

// resolveImages prefers the explicit URL list. Projects created before
// uploads existed only carry an image count; those fall back to the numbered
// files under the per-project assets folder. The fallback is a compatibility
// shim for old records, not a second source of truth.
func resolveImages(p domain.Project) []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.ImageCount <= 0 {
		return nil
	}

	folder := p.ID
	if !strings.HasPrefix(folder, "p") {
		folder = "p" + folder
	}

	out := make([]string, 0, p.ImageCount)
	for i := 1; i <= p.ImageCount; i++ {
		out = append(out, fmt.Sprintf("assets/projects/%s/p (%d).png", folder, i))
	}
	return out
}

// ProfileView groups profile entries for one language: about text plus the
// language-neutral contact block.
type ProfileView struct {
	About   map[string]string `json:"about"`
	Contact map[string]string `json:"contact"`
	Dir     string            `json:"dir"`
}

// Profile picks the requested language's about values out of the flat
// (category, key, value) rows. About keys carry _ar/_en suffixes; the
// suffix of the selected language wins, the other is dropped.
func Profile(entries []domain.ProfileEntry, lang string) ProfileView {
	lang = Normalize(lang)
	suffix := "_" + lang

	v := ProfileView{
		About:   map[string]string{},
		Contact: map[string]string{},
		Dir:     Dir(lang),
	}
	for _, e := range entries {
		switch e.Category {
		case domain.ProfileCategoryAbout:
			if strings.HasSuffix(e.Key, suffix) {
				v.About[strings.TrimSuffix(e.Key, suffix)] = e.Value
			} else if !strings.HasSuffix(e.Key, "_ar") && !strings.HasSuffix(e.Key, "_en") {
				v.About[e.Key] = e.Value
			}
		case domain.ProfileCategoryContact:
			v.Contact[e.Key] = e.Value
		}
	}
	return v
}
