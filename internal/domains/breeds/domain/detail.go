package domain

import "strings"

// GeneratedDetail is the in-depth breed profile produced by the generative source.
type GeneratedDetail struct {
	GeneratedBreed
	ScientificName  string
	Height          string
	Weight          string
	Lifespan        string
	Origin          string
	History         string
	Story           string
	Characteristics []string
}

// HistoryParagraphs splits the history text into non-empty paragraphs.
func (d GeneratedDetail) HistoryParagraphs() []string {
	var out []string
	for _, line := range strings.Split(d.History, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// StoryLinks holds the structured lines editors embed in a curated story.
type StoryLinks struct {
	EnglishName  string
	MoreInfoLink string
}

const (
	englishNamePrefix = "English name:"
	moreInfoPrefix    = "More info:"
)

// ParseStoryLinks extracts the "English name:" and "More info:" lines from a story.
func ParseStoryLinks(story string) StoryLinks {
	var links StoryLinks
	for _, line := range strings.Split(story, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case links.EnglishName == "" && strings.HasPrefix(line, englishNamePrefix):
			links.EnglishName = strings.TrimSpace(strings.TrimPrefix(line, englishNamePrefix))
		case links.MoreInfoLink == "" && strings.HasPrefix(line, moreInfoPrefix):
			links.MoreInfoLink = strings.TrimSpace(strings.TrimPrefix(line, moreInfoPrefix))
		}
	}
	return links
}

// GalleryStrip returns up to three images for the detail page: the pet gallery when
// present, otherwise the featured image repeated.
func (p CuratedPet) GalleryStrip() []Image {
	const stripSize = 3
	if len(p.Gallery) > 0 {
		n := min(len(p.Gallery), stripSize)
		return append([]Image(nil), p.Gallery[:n]...)
	}
	if p.Featured == nil {
		return nil
	}
	return []Image{*p.Featured, *p.Featured, *p.Featured}
}

// HeroImageURL is the full-size featured image, or "" when the pet has none.
func (p CuratedPet) HeroImageURL() string {
	if p.Featured == nil {
		return ""
	}
	return firstNonEmpty(p.Featured.URL, p.Featured.Medium)
}
