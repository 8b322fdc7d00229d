package domain

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// BreedSummaryRecord is the normalized card shown in a listing grid.
type BreedSummaryRecord struct {
	ID               string
	Name             string
	Type             PetType
	ShortDescription string
	SizeLabel        string
	ImageURL         string
	Slug             string
}

// RawRecord is one upstream record before normalization.
// It is implemented only by CuratedPet and GeneratedBreed.
type RawRecord interface {
	isRawRecord()
}

// Group is a taxonomy term attached to a curated pet.
type Group struct {
	ID   int64
	Name string
	Slug string
}

// Image is a media attachment with its renditions.
type Image struct {
	ID        int64
	URL       string
	Thumbnail string
	Medium    string
	Alt       string
	Width     int
	Height    int
}

// CuratedPet is the record shape returned by the curated pet API.
type CuratedPet struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Excerpt     string
	Height      string
	Weight      string
	Lifespan    string
	Story       string
	Groups      []Group
	Featured    *Image
	Gallery     []Image
}

// GeneratedBreed is the flat record produced by the generative source.
type GeneratedBreed struct {
	Name             string
	Type             PetType
	ShortDescription string
	Size             string
}

func (CuratedPet) isRawRecord()     {}
func (GeneratedBreed) isRawRecord() {}

// ToSummaries normalizes a batch of upstream records, preserving order.
func ToSummaries(records []RawRecord) []BreedSummaryRecord {
	out := make([]BreedSummaryRecord, 0, len(records))
	for _, record := range records {
		switch r := record.(type) {
		case CuratedPet:
			out = append(out, MapCuratedPet(r))
		case *CuratedPet:
			if r != nil {
				out = append(out, MapCuratedPet(*r))
			}
		case GeneratedBreed:
			out = append(out, MapGeneratedBreed(r))
		case *GeneratedBreed:
			if r != nil {
				out = append(out, MapGeneratedBreed(*r))
			}
		}
	}
	return out
}

// MapCuratedPet converts a curated pet into a summary card.
// ImageURL is left empty when the pet has no featured image.
func MapCuratedPet(p CuratedPet) BreedSummaryRecord {
	return BreedSummaryRecord{
		ID:               strconv.FormatInt(p.ID, 10),
		Name:             p.Name,
		Type:             p.PetType(),
		ShortDescription: firstNonEmpty(StripMarkup(p.Excerpt), StripMarkup(p.Description), p.categoryName()),
		SizeLabel:        joinNonEmpty(" | ", p.Height, p.Weight),
		ImageURL:         p.featuredURL(),
		Slug:             p.Slug,
	}
}

// MapGeneratedBreed converts a generated breed; its slug is synthesized from type and name.
func MapGeneratedBreed(b GeneratedBreed) BreedSummaryRecord {
	slug := SynthesizeSlug(b.Type, b.Name)
	return BreedSummaryRecord{
		ID:               slug,
		Name:             b.Name,
		Type:             b.Type,
		ShortDescription: b.ShortDescription,
		SizeLabel:        b.Size,
		Slug:             slug,
	}
}

// PetType scans the groups for the species marker; dog wins over cat.
func (p CuratedPet) PetType() PetType {
	for _, candidate := range []PetType{PetTypeDog, PetTypeCat} {
		for _, g := range p.Groups {
			if g.Slug == string(candidate) {
				return candidate
			}
		}
	}
	return PetTypeUnknown
}

// Category returns the first non-species group name, or "Unknown".
func (p CuratedPet) Category() string {
	if name := p.categoryName(); name != "" {
		return name
	}
	return "Unknown"
}

func (p CuratedPet) categoryName() string {
	for _, g := range p.Groups {
		if g.Slug != string(PetTypeDog) && g.Slug != string(PetTypeCat) {
			return g.Name
		}
	}
	return ""
}

func (p CuratedPet) featuredURL() string {
	if p.Featured == nil {
		return ""
	}
	return firstNonEmpty(p.Featured.Medium, p.Featured.URL)
}

// SummaryPlaceholderImage is the deterministic card image used when a record has none.
func SummaryPlaceholderImage(name string, t PetType) string {
	seed := name
	if t != PetTypeDog {
		seed += "cat"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/300", seedEscape(seed))
}

// DetailPlaceholderImage is the deterministic hero image for detail views.
func DetailPlaceholderImage(name string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", seedEscape(name))
}

// GalleryPlaceholderImage is the i-th deterministic thumbnail for a breed gallery strip.
func GalleryPlaceholderImage(name string, i int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s%d/400/400", seedEscape(name), i)
}

var markupTag = regexp.MustCompile(`<[^>]*>`)

// StripMarkup removes HTML tags and entities from CMS-rendered text.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(markupTag.ReplaceAllString(s, " "))), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
