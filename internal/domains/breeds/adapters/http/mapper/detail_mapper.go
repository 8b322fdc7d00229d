package mapper

import (
	breedtypes "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
)

// Image is a curated media attachment.
type Image struct {
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Medium    string `json:"medium,omitempty"`
	Alt       string `json:"alt,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// CuratedDetail is the body of GET /api/v1/pets/{slug}.
type CuratedDetail struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Type         string  `json:"type"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Height       string  `json:"height"`
	Weight       string  `json:"weight"`
	Lifespan     string  `json:"lifespan"`
	Story        string  `json:"story"`
	EnglishName  string  `json:"englishName,omitempty"`
	MoreInfoLink string  `json:"moreInfoLink,omitempty"`
	Gallery      []Image `json:"gallery"`
	MainImage    string  `json:"mainImage"`
	AIGenerated  bool    `json:"aiGenerated"`
}

// GeneratedDetail is the body of GET /api/v1/breeds/{type}/{name}.
type GeneratedDetail struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Slug             string   `json:"slug"`
	ScientificName   string   `json:"scientificName"`
	ShortDescription string   `json:"shortDescription"`
	Size             string   `json:"size"`
	Height           string   `json:"height"`
	Weight           string   `json:"weight"`
	Lifespan         string   `json:"lifespan"`
	Origin           string   `json:"origin"`
	History          []string `json:"history"`
	Story            string   `json:"story"`
	Characteristics  []string `json:"characteristics"`
	ImageURL         string   `json:"imageUrl"`
	AIGenerated      bool     `json:"aiGenerated"`
	Gallery          []string `json:"gallery"`
}

// FromCuratedDetail maps a curated detail page.
func FromCuratedDetail(d *breedtypes.CuratedBreedDetail) CuratedDetail {
	gallery := make([]Image, 0, len(d.Gallery))
	for _, img := range d.Gallery {
		gallery = append(gallery, fromImage(img))
	}
	return CuratedDetail{
		ID:           d.Pet.ID,
		Name:         d.Pet.Name,
		Slug:         d.Pet.Slug,
		Type:         string(d.Type),
		Category:     d.Category,
		Description:  d.Description,
		Height:       d.Pet.Height,
		Weight:       d.Pet.Weight,
		Lifespan:     d.Pet.Lifespan,
		Story:        d.Pet.Story,
		EnglishName:  d.Links.EnglishName,
		MoreInfoLink: d.Links.MoreInfoLink,
		Gallery:      gallery,
		MainImage:    d.MainImage,
		AIGenerated:  d.AIGenerated,
	}
}

// FromGeneratedDetail maps a generated detail page.
func FromGeneratedDetail(d *breedtypes.GeneratedBreedDetail) GeneratedDetail {
	characteristics := d.Detail.Characteristics
	if characteristics == nil {
		characteristics = []string{}
	}
	history := d.Detail.HistoryParagraphs()
	if history == nil {
		history = []string{}
	}
	return GeneratedDetail{
		Name:             d.Detail.Name,
		Type:             string(d.Detail.Type),
		Slug:             d.Slug,
		ScientificName:   d.Detail.ScientificName,
		ShortDescription: d.Detail.ShortDescription,
		Size:             d.Detail.Size,
		Height:           d.Detail.Height,
		Weight:           d.Detail.Weight,
		Lifespan:         d.Detail.Lifespan,
		Origin:           d.Detail.Origin,
		History:          history,
		Story:            d.Detail.Story,
		Characteristics:  characteristics,
		ImageURL:         d.ImageURL,
		AIGenerated:      d.AIGenerated,
		Gallery:          d.Gallery,
	}
}

func fromImage(img domain.Image) Image {
	return Image{
		URL:       img.URL,
		Thumbnail: img.Thumbnail,
		Medium:    img.Medium,
		Alt:       img.Alt,
		Width:     img.Width,
		Height:    img.Height,
	}
}
