package curated

import (
	"context"
	"errors"
	"net/http"

	petapi "github.com/Apurer/pet-encyclopedia/internal/clients/http/petapi"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/ports"
)

// PetAPI is the subset of the REST client the provider needs.
type PetAPI interface {
	ListPets(ctx context.Context, params *petapi.ListPetsParams) (*petapi.PetListResponse, error)
	GetPetBySlug(ctx context.Context, slug string) (*petapi.Pet, error)
}

// Provider serves breed listings and pet details from the curated REST API.
type Provider struct {
	api PetAPI
}

// NewProvider wires the REST client; a nil client reports configuration errors on use.
func NewProvider(api PetAPI) *Provider {
	return &Provider{api: api}
}

// Source identifies the curated upstream.
func (p *Provider) Source() domain.Source {
	return domain.SourceCurated
}

// FetchBreeds issues exactly one GET /pets. Only q is sent while a search is active, otherwise type.
func (p *Provider) FetchBreeds(ctx context.Context, filter domain.FilterState) (*ports.FetchResult, error) {
	const op = "list pets"
	if p.api == nil {
		return nil, domain.NewConfigurationError(domain.SourceCurated, op, errors.New("pet API base URL is not configured"))
	}
	page, perPage := filter.Page, filter.PerPage
	params := &petapi.ListPetsParams{Page: &page, PerPage: &perPage}
	if filter.HasQuery() {
		q := filter.Query
		params.Q = &q
	} else {
		t := string(filter.EffectiveType())
		params.Type = &t
	}

	resp, err := p.api.ListPets(ctx, params)
	if err != nil {
		return nil, translateError(op, err)
	}
	records := make([]domain.RawRecord, 0, len(resp.Data))
	for _, pet := range resp.Data {
		records = append(records, ToDomain(pet))
	}
	return &ports.FetchResult{Records: records, PageInfo: ToPageInfo(resp.Pagination, filter)}, nil
}

// FetchPetBySlug loads a single curated pet.
func (p *Provider) FetchPetBySlug(ctx context.Context, slug string) (*domain.CuratedPet, error) {
	const op = "get pet"
	if p.api == nil {
		return nil, domain.NewConfigurationError(domain.SourceCurated, op, errors.New("pet API base URL is not configured"))
	}
	pet, err := p.api.GetPetBySlug(ctx, slug)
	if err != nil {
		return nil, translateError(op, err)
	}
	out := ToDomain(*pet)
	return &out, nil
}

func translateError(op string, err error) error {
	var statusErr *petapi.StatusError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.As(err, &statusErr):
		return domain.NewUpstreamRejected(domain.SourceCurated, op, statusErr.StatusCode, err)
	case errors.Is(err, petapi.ErrUnsuccessful):
		return domain.NewUpstreamRejected(domain.SourceCurated, op, http.StatusOK, err)
	case errors.Is(err, petapi.ErrDecode):
		return domain.NewMalformedResponse(domain.SourceCurated, op, err)
	default:
		return domain.NewUpstreamRejected(domain.SourceCurated, op, 0, err)
	}
}

var (
	_ ports.BreedProvider  = (*Provider)(nil)
	_ ports.CuratedCatalog = (*Provider)(nil)
)
