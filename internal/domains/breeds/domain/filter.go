package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// PetType identifies the species a breed belongs to.
type PetType string

const (
	PetTypeDog     PetType = "dog"
	PetTypeCat     PetType = "cat"
	PetTypeUnknown PetType = "unknown"
)

// ParsePetType accepts "dog" or "cat" in any case; everything else is rejected.
func ParsePetType(raw string) (PetType, bool) {
	switch PetType(strings.ToLower(strings.TrimSpace(raw))) {
	case PetTypeDog:
		return PetTypeDog, true
	case PetTypeCat:
		return PetTypeCat, true
	default:
		return "", false
	}
}

// Query parameter names shared by the parser and the URL serializer.
const (
	ParamQuery   = "q"
	ParamType    = "type"
	ParamPage    = "page"
	ParamPerPage = "per_page"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 12
	MaxPerPage     = 100
	DefaultType    = PetTypeDog
)

// FilterState is the typed view of the listing URL.
// Query and Type are mutually exclusive once parsed; an empty value means unset.
type FilterState struct {
	Query   string
	Type    PetType
	Page    int
	PerPage int
}

// HasQuery reports whether a free-text search is active.
func (f FilterState) HasQuery() bool {
	return f.Query != ""
}

// EffectiveType resolves the type the providers should fetch when no query is active.
func (f FilterState) EffectiveType() PetType {
	if f.Type == "" {
		return DefaultType
	}
	return f.Type
}

// ParseFilter turns raw query parameters into a FilterState.
// It never fails: malformed numbers fall back to defaults and a search query
// takes precedence over the type toggle, which itself defaults to dogs.
func ParseFilter(values url.Values) FilterState {
	t, _ := ParsePetType(values.Get(ParamType))
	return FilterState{
		Query:   values.Get(ParamQuery),
		Type:    t,
		Page:    positiveIntOr(values.Get(ParamPage), DefaultPage),
		PerPage: positiveIntOr(values.Get(ParamPerPage), DefaultPerPage),
	}.Normalize()
}

// Normalize applies the listing defaults: page and per_page fall back when not positive,
// per_page is capped at MaxPerPage, and an active query clears the type, which otherwise
// defaults to dogs.
func (f FilterState) Normalize() FilterState {
	f.Query = strings.TrimSpace(f.Query)
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > MaxPerPage {
		f.PerPage = MaxPerPage
	}
	if f.HasQuery() {
		f.Type = ""
		return f
	}
	if t, ok := ParsePetType(string(f.Type)); ok {
		f.Type = t
	} else {
		f.Type = DefaultType
	}
	return f
}

// Values serializes the state back into URL parameters.
// The page is written only when includePage is set or it differs from the first page;
// per_page is written only when it differs from the default.
func (f FilterState) Values(includePage bool) url.Values {
	values := url.Values{}
	if f.HasQuery() {
		values.Set(ParamQuery, f.Query)
	} else if f.Type != "" {
		values.Set(ParamType, string(f.Type))
	}
	if includePage || f.Page > DefaultPage {
		page := f.Page
		if page < DefaultPage {
			page = DefaultPage
		}
		values.Set(ParamPage, strconv.Itoa(page))
	}
	if f.PerPage > 0 && f.PerPage != DefaultPerPage {
		values.Set(ParamPerPage, strconv.Itoa(f.PerPage))
	}
	return values
}

// Canonical returns the encoded query string identifying this view.
func (f FilterState) Canonical() string {
	return f.Values(false).Encode()
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
