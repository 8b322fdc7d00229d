package curated

import (
	petapi "github.com/Apurer/pet-encyclopedia/internal/clients/http/petapi"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
)

// ToDomain converts the REST resource into the curated record variant.
func ToDomain(p petapi.Pet) domain.CuratedPet {
	groups := make([]domain.Group, 0, len(p.Groups))
	for _, g := range p.Groups {
		groups = append(groups, domain.Group{ID: g.ID, Name: g.Name, Slug: g.Slug})
	}
	gallery := make([]domain.Image, 0, len(p.Gallery))
	for _, img := range p.Gallery {
		gallery = append(gallery, toImage(img))
	}
	var featured *domain.Image
	if p.FeaturedImage != nil {
		img := toImage(*p.FeaturedImage)
		featured = &img
	}
	return domain.CuratedPet{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Excerpt:     p.Excerpt,
		Height:      p.Height,
		Weight:      p.Weight,
		Lifespan:    p.Lifespan,
		Story:       p.Story,
		Groups:      groups,
		Featured:    featured,
		Gallery:     gallery,
	}
}

func toImage(img petapi.PetImage) domain.Image {
	return domain.Image{
		ID:        img.ID,
		URL:       img.URL,
		Thumbnail: img.Thumbnail,
		Medium:    img.Medium,
		Alt:       img.Alt,
		Width:     img.Width,
		Height:    img.Height,
	}
}

// ToPageInfo recomputes the envelope from the upstream total so it is always consistent.
// Missing current_page or per_page fall back to the requested values.
func ToPageInfo(p *petapi.Pagination, filter domain.FilterState) *domain.PageInfo {
	if p == nil {
		return nil
	}
	page := int(p.CurrentPage)
	if page < 1 {
		page = filter.Page
	}
	perPage := int(p.PerPage)
	if perPage < 1 {
		perPage = filter.PerPage
	}
	info := domain.NewPageInfo(p.Total, page, perPage)
	return &info
}
