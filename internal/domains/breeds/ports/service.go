package ports

import (
	"context"

	breedtypes "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application/types"
)

// Service defines the breeds use cases exposed to adapters (inbound/driving port).
type Service interface {
	ListBreeds(ctx context.Context, input breedtypes.ListBreedsInput) (*breedtypes.BreedListing, error)
	Navigate(ctx context.Context, input breedtypes.NavigateInput) (*breedtypes.NavigateResult, error)
	GetCuratedDetail(ctx context.Context, input breedtypes.CuratedDetailInput) (*breedtypes.CuratedBreedDetail, error)
	GetGeneratedDetail(ctx context.Context, input breedtypes.GeneratedDetailInput) (*breedtypes.GeneratedBreedDetail, error)
}
