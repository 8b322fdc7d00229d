package generative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/Apurer/pet-encyclopedia/internal/clients/gemini"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/ports"
)

const (
	maxListSize   = 24
	maxSearchSize = 10
)

// JSONGenerator produces schema-constrained JSON text.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Provider serves breed listings and detail profiles from the generative API.
type Provider struct {
	gen       JSONGenerator
	validator *Validator
}

// NewProvider wires the generator with the embedded output schemas.
func NewProvider(gen JSONGenerator) (*Provider, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	return &Provider{gen: gen, validator: validator}, nil
}

// Source identifies the generative upstream.
func (p *Provider) Source() domain.Source {
	return domain.SourceGenerative
}

type breedDTO struct {
	Name             string `json:"name"`
	Type             string `json:"type"`
	ShortDescription string `json:"shortDescription"`
	Size             string `json:"size"`
}

type detailDTO struct {
	breedDTO
	ScientificName  string   `json:"scientificName"`
	Height          string   `json:"height"`
	Weight          string   `json:"weight"`
	Lifespan        string   `json:"lifespan"`
	Origin          string   `json:"origin"`
	History         string   `json:"history"`
	Story           string   `json:"story"`
	Characteristics []string `json:"characteristics"`
}

// FetchBreeds lists popular breeds of the filter's type, or searches when a query is active.
// The source has no pagination, so the result is always a single page.
func (p *Provider) FetchBreeds(ctx context.Context, filter domain.FilterState) (*ports.FetchResult, error) {
	var (
		op, prompt, schemaName string
		schema                 *genai.Schema
		limit                  int
	)
	if filter.HasQuery() {
		op, schemaName, schema, limit = "search breeds", schemaBreedSearch, searchResponseSchema, maxSearchSize
		prompt = fmt.Sprintf("Search for dog or cat breeds matching: %q. Return at most %d results.", filter.Query, maxSearchSize)
	} else {
		limit = min(max(filter.PerPage, 1), maxListSize)
		op, schemaName, schema = "list breeds", schemaBreedList, listResponseSchema
		prompt = fmt.Sprintf("Provide a list of %d most popular %s breeds.", limit, filter.EffectiveType())
	}

	var dtos []breedDTO
	if err := p.generate(ctx, op, prompt, schemaName, schema, &dtos); err != nil {
		return nil, err
	}
	if len(dtos) > limit {
		dtos = dtos[:limit]
	}

	records := make([]domain.RawRecord, 0, len(dtos))
	for _, dto := range dtos {
		t := filter.EffectiveType()
		if filter.HasQuery() {
			parsed, ok := domain.ParsePetType(dto.Type)
			if !ok {
				return nil, domain.NewMalformedResponse(domain.SourceGenerative, op, fmt.Errorf("unexpected type %q", dto.Type))
			}
			t = parsed
		}
		records = append(records, domain.GeneratedBreed{
			Name:             dto.Name,
			Type:             t,
			ShortDescription: dto.ShortDescription,
			Size:             dto.Size,
		})
	}
	page := domain.SinglePage(len(records), filter.PerPage)
	return &ports.FetchResult{Records: records, PageInfo: &page}, nil
}

// GenerateDetail produces the in-depth profile of one breed.
func (p *Provider) GenerateDetail(ctx context.Context, t domain.PetType, name string) (*domain.GeneratedDetail, error) {
	const op = "breed detail"
	prompt := fmt.Sprintf("Provide deep detail about the %s %s breed. Include height, weight, lifespan, origin, detailed history, and a heartwarming short story about this breed.", name, t)

	var dto detailDTO
	if err := p.generate(ctx, op, prompt, schemaBreedDetail, detailResponseSchema, &dto); err != nil {
		return nil, err
	}
	return &domain.GeneratedDetail{
		GeneratedBreed: domain.GeneratedBreed{
			Name:             dto.Name,
			Type:             t,
			ShortDescription: dto.ShortDescription,
			Size:             dto.Size,
		},
		ScientificName:  dto.ScientificName,
		Height:          dto.Height,
		Weight:          dto.Weight,
		Lifespan:        dto.Lifespan,
		Origin:          dto.Origin,
		History:         dto.History,
		Story:           dto.Story,
		Characteristics: dto.Characteristics,
	}, nil
}

func (p *Provider) generate(ctx context.Context, op, prompt, schemaName string, schema *genai.Schema, into any) error {
	text, err := p.gen.GenerateJSON(ctx, prompt, schema)
	if err != nil {
		return translateError(op, err)
	}
	if err := p.validator.Validate(schemaName, []byte(text)); err != nil {
		return domain.NewMalformedResponse(domain.SourceGenerative, op, err)
	}
	if err := json.Unmarshal([]byte(text), into); err != nil {
		return domain.NewMalformedResponse(domain.SourceGenerative, op, err)
	}
	return nil
}

func translateError(op string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, gemini.ErrNotConfigured):
		return domain.NewConfigurationError(domain.SourceGenerative, op, err)
	case errors.Is(err, gemini.ErrEmptyResponse):
		return domain.NewMalformedResponse(domain.SourceGenerative, op, err)
	default:
		return domain.NewUpstreamRejected(domain.SourceGenerative, op, gemini.StatusCode(err), err)
	}
}

var (
	_ ports.BreedProvider   = (*Provider)(nil)
	_ ports.DetailGenerator = (*Provider)(nil)
)
