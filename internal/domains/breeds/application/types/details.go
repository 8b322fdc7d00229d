package types

import "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"

// CuratedDetailInput identifies a curated pet by its upstream slug.
type CuratedDetailInput struct {
	Slug string
}

// CuratedBreedDetail is the detail page of a curated pet.
type CuratedBreedDetail struct {
	Pet         domain.CuratedPet
	Type        domain.PetType
	Category    string
	Description string
	Links       domain.StoryLinks
	Gallery     []domain.Image
	MainImage   string
	AIGenerated bool
}

// GeneratedDetailInput identifies a generated breed by the "{type}/{escaped name}"
// slug its summary carries.
type GeneratedDetailInput struct {
	Slug string
}

// GeneratedBreedDetail is the detail page of a generated breed.
type GeneratedBreedDetail struct {
	Detail      domain.GeneratedDetail
	Slug        string
	ImageURL    string
	AIGenerated bool
	Gallery     []string
}
