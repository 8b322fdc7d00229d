package types

import "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"

// ListBreedsInput carries the parsed URL state of a listing request.
type ListBreedsInput struct {
	Filter domain.FilterState
}

// NavigationLinks are canonical query strings for every transition a pager offers.
// Prev and Next are nil on the first and last page respectively.
type NavigationLinks struct {
	Self        string
	First       string
	Last        string
	Prev        *string
	Next        *string
	Dog         string
	Cat         string
	ClearSearch string
}

// BreedListing is one rendered page of breed cards.
// Filter and CanonicalQuery identify the view it was computed for so stale
// responses can be discarded by the caller.
type BreedListing struct {
	Filter         domain.FilterState
	CanonicalQuery string
	Source         domain.Source
	Records        []domain.BreedSummaryRecord
	PageInfo       domain.PageInfo
	Window         []domain.WindowItem
	Links          NavigationLinks
}

// NavigateAction names a pagination controller transition.
type NavigateAction string

const (
	ActionGoToPage         NavigateAction = "goToPage"
	ActionChangeTypeFilter NavigateAction = "changeTypeFilter"
	ActionSubmitSearch     NavigateAction = "submitSearch"
	ActionClearSearch      NavigateAction = "clearSearch"
)

// NavigateInput describes a transition requested against a rendered view.
type NavigateInput struct {
	Current    domain.FilterState
	TotalPages int
	Action     NavigateAction
	Page       int
	Type       string
	Text       string
}

// NavigateResult is the state after a transition. Changed is false for no-ops.
type NavigateResult struct {
	Filter  domain.FilterState
	Query   string
	Changed bool
}
