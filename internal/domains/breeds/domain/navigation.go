package domain

import (
	"net/url"
	"strings"
)

// Navigator drives URL mutations for a listing view.
// Every transition returns the next FilterState together with the query string to
// push; a rejected transition returns the current state and ok=false.
type Navigator struct {
	state FilterState
	page  PageInfo
}

// NewNavigator binds the controller to the state a listing was rendered for.
func NewNavigator(state FilterState, page PageInfo) Navigator {
	return Navigator{state: state, page: page}
}

// State exposes the filter the navigator currently points at.
func (n Navigator) State() FilterState {
	return n.state
}

// GoToPage moves to page target while keeping the active query or type.
func (n Navigator) GoToPage(target int) (FilterState, url.Values, bool) {
	if !n.page.Contains(target) {
		return n.state, n.state.Values(true), false
	}
	next := n.state
	next.Page = target
	return next, next.Values(true), true
}

// ChangeTypeFilter switches species, dropping any search and returning to page one.
func (n Navigator) ChangeTypeFilter(t PetType) (FilterState, url.Values, bool) {
	parsed, ok := ParsePetType(string(t))
	if !ok {
		return n.state, n.state.Values(false), false
	}
	next := FilterState{Type: parsed, Page: DefaultPage, PerPage: n.perPage()}
	return next, next.Values(false), true
}

// SubmitSearch starts a free-text search; blank input is ignored.
func (n Navigator) SubmitSearch(text string) (FilterState, url.Values, bool) {
	query := strings.TrimSpace(text)
	if query == "" {
		return n.state, n.state.Values(false), false
	}
	next := FilterState{Query: query, Page: DefaultPage, PerPage: n.perPage()}
	return next, next.Values(false), true
}

// ClearSearch drops the query and leaves the type unset so the default applies.
func (n Navigator) ClearSearch() (FilterState, url.Values, bool) {
	next := FilterState{Page: DefaultPage, PerPage: n.perPage()}
	return next, next.Values(false), true
}

func (n Navigator) perPage() int {
	if n.state.PerPage < 1 {
		return DefaultPerPage
	}
	return n.state.PerPage
}
