package application

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	types "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/ports"
)

const galleryPlaceholders = 3

// Service orchestrates the breeds bounded context use cases.
type Service struct {
	provider ports.BreedProvider
	catalog  ports.CuratedCatalog
	details  ports.DetailGenerator
	images   ports.ImageGenerator
}

// NewService wires the breeds service with its dependencies.
// images may be nil, in which case detail views always use placeholders.
func NewService(provider ports.BreedProvider, catalog ports.CuratedCatalog, details ports.DetailGenerator, images ports.ImageGenerator) *Service {
	return &Service{provider: provider, catalog: catalog, details: details, images: images}
}

// ListBreeds fetches one page from the configured provider and renders it for display.
func (s *Service) ListBreeds(ctx context.Context, input types.ListBreedsInput) (*types.BreedListing, error) {
	filter := input.Filter.Normalize()
	result, err := s.provider.FetchBreeds(ctx, filter)
	if err != nil {
		return nil, mapError(err)
	}
	page := pageInfoFor(result, filter)
	if len(result.Records) == 0 && page.Total > 0 && page.CurrentPage != filter.Page {
		// The requested page lies past the end; render the last page instead.
		filter.Page = page.CurrentPage
		if result, err = s.provider.FetchBreeds(ctx, filter); err != nil {
			return nil, mapError(err)
		}
		page = pageInfoFor(result, filter)
	}
	filter.Page = page.CurrentPage

	records := domain.ToSummaries(result.Records)
	for i := range records {
		if records[i].ImageURL == "" {
			records[i].ImageURL = domain.SummaryPlaceholderImage(records[i].Name, records[i].Type)
		}
	}

	return &types.BreedListing{
		Filter:         filter,
		CanonicalQuery: filter.Canonical(),
		Source:         s.provider.Source(),
		Records:        records,
		PageInfo:       page,
		Window:         domain.PageWindow(page.TotalPages, page.CurrentPage),
		Links:          buildLinks(filter, page),
	}, nil
}

// Navigate applies a pagination controller transition to a rendered view.
func (s *Service) Navigate(_ context.Context, input types.NavigateInput) (*types.NavigateResult, error) {
	current := input.Current.Normalize()
	totalPages := max(input.TotalPages, 1)
	nav := domain.NewNavigator(current, domain.PageInfo{CurrentPage: current.Page, TotalPages: totalPages})

	var (
		next    domain.FilterState
		changed bool
	)
	switch input.Action {
	case types.ActionGoToPage:
		next, _, changed = nav.GoToPage(input.Page)
	case types.ActionChangeTypeFilter:
		t, ok := domain.ParsePetType(input.Type)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidInput, input.Type)
		}
		next, _, changed = nav.ChangeTypeFilter(t)
	case types.ActionSubmitSearch:
		next, _, changed = nav.SubmitSearch(input.Text)
	case types.ActionClearSearch:
		next, _, changed = nav.ClearSearch()
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, input.Action)
	}

	includePage := input.Action == types.ActionGoToPage
	return &types.NavigateResult{
		Filter:  next,
		Query:   next.Values(includePage).Encode(),
		Changed: changed,
	}, nil
}

// GetCuratedDetail loads a curated pet and resolves its hero image.
func (s *Service) GetCuratedDetail(ctx context.Context, input types.CuratedDetailInput) (*types.CuratedBreedDetail, error) {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	pet, err := s.catalog.FetchPetBySlug(ctx, slug)
	if err != nil {
		return nil, mapDetailError(err)
	}

	detail := &types.CuratedBreedDetail{
		Pet:         *pet,
		Type:        pet.PetType(),
		Category:    pet.Category(),
		Description: domain.StripMarkup(pet.Description),
		Links:       domain.ParseStoryLinks(pet.Story),
		Gallery:     pet.GalleryStrip(),
		MainImage:   pet.HeroImageURL(),
	}
	if detail.MainImage == "" {
		if img := s.generateImage(ctx, pet.Name); img != "" {
			detail.MainImage = img
			detail.AIGenerated = true
		} else {
			detail.MainImage = domain.DetailPlaceholderImage(pet.Name)
		}
	}
	return detail, nil
}

// GetGeneratedDetail produces a breed profile and its illustration concurrently.
func (s *Service) GetGeneratedDetail(ctx context.Context, input types.GeneratedDetailInput) (*types.GeneratedBreedDetail, error) {
	t, name, err := domain.ParseSlug(input.Slug)
	if err != nil {
		return nil, mapError(fmt.Errorf("slug %q: %w", input.Slug, err))
	}
	name = strings.TrimSpace(name)

	var (
		detail *domain.GeneratedDetail
		image  string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.details.GenerateDetail(gctx, t, name)
		if err != nil {
			return err
		}
		detail = d
		return nil
	})
	g.Go(func() error {
		image = s.generateImage(gctx, fmt.Sprintf("%s %s", name, t))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, mapDetailError(err)
	}

	if detail.Name == "" {
		detail.Name = name
	}
	detail.Type = t

	out := &types.GeneratedBreedDetail{
		Detail:      *detail,
		Slug:        domain.SynthesizeSlug(t, name),
		ImageURL:    image,
		AIGenerated: image != "",
		Gallery:     make([]string, 0, galleryPlaceholders),
	}
	if out.ImageURL == "" {
		out.ImageURL = domain.DetailPlaceholderImage(name)
	}
	for i := 1; i <= galleryPlaceholders; i++ {
		out.Gallery = append(out.Gallery, domain.GalleryPlaceholderImage(detail.Name, i))
	}
	return out, nil
}

// generateImage returns "" when no generator is wired or generation fails.
func (s *Service) generateImage(ctx context.Context, subject string) string {
	if s.images == nil {
		return ""
	}
	img, err := s.images.GenerateImage(ctx, subject)
	if err != nil {
		return ""
	}
	return img
}

// pageInfoFor prefers the upstream envelope and synthesizes a single page otherwise.
func pageInfoFor(result *ports.FetchResult, filter domain.FilterState) domain.PageInfo {
	if result.PageInfo != nil {
		return *result.PageInfo
	}
	return domain.SinglePage(len(result.Records), filter.PerPage)
}

func buildLinks(filter domain.FilterState, page domain.PageInfo) types.NavigationLinks {
	nav := domain.NewNavigator(filter, page)
	encode := func(_ domain.FilterState, values url.Values, _ bool) string {
		return values.Encode()
	}
	links := types.NavigationLinks{
		Self:        filter.Canonical(),
		First:       encode(nav.GoToPage(1)),
		Last:        encode(nav.GoToPage(page.TotalPages)),
		Dog:         encode(nav.ChangeTypeFilter(domain.PetTypeDog)),
		Cat:         encode(nav.ChangeTypeFilter(domain.PetTypeCat)),
		ClearSearch: encode(nav.ClearSearch()),
	}
	if page.PrevPage != nil {
		prev := encode(nav.GoToPage(*page.PrevPage))
		links.Prev = &prev
	}
	if page.NextPage != nil {
		next := encode(nav.GoToPage(*page.NextPage))
		links.Next = &next
	}
	return links
}
