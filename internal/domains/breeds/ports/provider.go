package ports

import (
	"context"

	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
)

// FetchResult is what a provider returns for one listing fetch.
// PageInfo is nil when the source has no pagination of its own.
type FetchResult struct {
	Records  []domain.RawRecord
	PageInfo *domain.PageInfo
}

// BreedProvider fetches one page of breed records (outbound/driven port).
// Failures are *domain.FetchError values; providers never retry.
type BreedProvider interface {
	Source() domain.Source
	FetchBreeds(ctx context.Context, filter domain.FilterState) (*FetchResult, error)
}

// CuratedCatalog loads a single curated pet.
type CuratedCatalog interface {
	FetchPetBySlug(ctx context.Context, slug string) (*domain.CuratedPet, error)
}

// DetailGenerator produces an in-depth breed profile.
type DetailGenerator interface {
	GenerateDetail(ctx context.Context, t domain.PetType, name string) (*domain.GeneratedDetail, error)
}

// ImageGenerator renders an illustration of subject and returns it as a data URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, subject string) (string, error)
}
