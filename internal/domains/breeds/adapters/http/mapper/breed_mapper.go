package mapper

import (
	"net/url"

	breedtypes "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
)

// BreedSummary is the HTTP representation of a breed card.
type BreedSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	ShortDescription string `json:"shortDescription"`
	SizeLabel        string `json:"sizeLabel"`
	ImageURL         string `json:"imageUrl"`
	Slug             string `json:"slug"`
}

// PageInfo mirrors domain.PageInfo.
type PageInfo struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	PerPage     int  `json:"perPage"`
	TotalPages  int  `json:"totalPages"`
	From        int  `json:"from"`
	To          int  `json:"to"`
	HasMore     bool `json:"hasMore"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// PageLink is one pager entry; ellipsis entries carry no page.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Filter echoes the view a response was computed for.
type Filter struct {
	Query   *string `json:"q"`
	Type    *string `json:"type"`
	Page    int     `json:"page"`
	PerPage int     `json:"perPage"`
}

// Links are query strings (without "?") for each pager transition.
type Links struct {
	Self        string  `json:"self"`
	First       string  `json:"first"`
	Last        string  `json:"last"`
	Prev        *string `json:"prev"`
	Next        *string `json:"next"`
	Dog         string  `json:"dog"`
	Cat         string  `json:"cat"`
	ClearSearch string  `json:"clearSearch"`
}

// BreedListing is the body of GET /api/v1/breeds.
type BreedListing struct {
	Filter         Filter         `json:"filter"`
	CanonicalQuery string         `json:"canonicalQuery"`
	Source         string         `json:"source"`
	Breeds         []BreedSummary `json:"breeds"`
	PageInfo       PageInfo       `json:"pageInfo"`
	Pages          []PageLink     `json:"pages"`
	Links          Links          `json:"links"`
}

// NavigateRequest is the body of POST /api/v1/breeds/navigate.
// Query is the current listing query string; TotalPages bounds goToPage.
type NavigateRequest struct {
	Query      string `json:"query"`
	TotalPages int    `json:"totalPages"`
	Action     string `json:"action" binding:"required"`
	Page       int    `json:"page,omitempty"`
	Type       string `json:"type,omitempty"`
	Text       string `json:"text,omitempty"`
}

// NavigateResponse is the state after a transition.
type NavigateResponse struct {
	Filter  Filter `json:"filter"`
	Query   string `json:"query"`
	Changed bool   `json:"changed"`
}

// ToNavigateInput parses the current query string the same way the listing endpoint does.
func ToNavigateInput(req NavigateRequest) (breedtypes.NavigateInput, error) {
	values, err := url.ParseQuery(req.Query)
	if err != nil {
		return breedtypes.NavigateInput{}, err
	}
	return breedtypes.NavigateInput{
		Current:    domain.ParseFilter(values),
		TotalPages: req.TotalPages,
		Action:     breedtypes.NavigateAction(req.Action),
		Page:       req.Page,
		Type:       req.Type,
		Text:       req.Text,
	}, nil
}

// FromNavigateResult maps a transition result to its HTTP representation.
func FromNavigateResult(res *breedtypes.NavigateResult) NavigateResponse {
	return NavigateResponse{Filter: FromFilter(res.Filter), Query: res.Query, Changed: res.Changed}
}

// FromFilter maps a FilterState; unset query or type become null.
func FromFilter(f domain.FilterState) Filter {
	out := Filter{Page: f.Page, PerPage: f.PerPage}
	if f.HasQuery() {
		q := f.Query
		out.Query = &q
	}
	if f.Type != "" {
		t := string(f.Type)
		out.Type = &t
	}
	return out
}

// FromListing maps a rendered listing page.
func FromListing(l *breedtypes.BreedListing) BreedListing {
	breeds := make([]BreedSummary, 0, len(l.Records))
	for _, r := range l.Records {
		breeds = append(breeds, FromSummary(r))
	}
	pages := make([]PageLink, 0, len(l.Window))
	for _, item := range l.Window {
		pages = append(pages, PageLink{Page: item.Page, Current: item.Current, Ellipsis: item.Ellipsis})
	}
	return BreedListing{
		Filter:         FromFilter(l.Filter),
		CanonicalQuery: l.CanonicalQuery,
		Source:         string(l.Source),
		Breeds:         breeds,
		PageInfo:       FromPageInfo(l.PageInfo),
		Pages:          pages,
		Links: Links{
			Self:        l.Links.Self,
			First:       l.Links.First,
			Last:        l.Links.Last,
			Prev:        l.Links.Prev,
			Next:        l.Links.Next,
			Dog:         l.Links.Dog,
			Cat:         l.Links.Cat,
			ClearSearch: l.Links.ClearSearch,
		},
	}
}

// FromSummary maps a single card.
func FromSummary(r domain.BreedSummaryRecord) BreedSummary {
	return BreedSummary{
		ID:               r.ID,
		Name:             r.Name,
		Type:             string(r.Type),
		ShortDescription: r.ShortDescription,
		SizeLabel:        r.SizeLabel,
		ImageURL:         r.ImageURL,
		Slug:             r.Slug,
	}
}

// FromPageInfo maps the pagination envelope.
func FromPageInfo(p domain.PageInfo) PageInfo {
	return PageInfo{
		Total:       p.Total,
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		TotalPages:  p.TotalPages,
		From:        p.From,
		To:          p.To,
		HasMore:     p.HasMore,
		NextPage:    p.NextPage,
		PrevPage:    p.PrevPage,
	}
}
