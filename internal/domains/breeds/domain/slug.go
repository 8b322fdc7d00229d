package domain

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidSlug is returned when a synthesized slug cannot be decoded.
var ErrInvalidSlug = errors.New("invalid breed slug")

// SynthesizeSlug builds the detail-page key for a breed that has no upstream slug.
// The result is "{type}/{escaped name}"; identical inputs always give identical slugs.
func SynthesizeSlug(t PetType, name string) string {
	return string(t) + "/" + url.PathEscape(strings.TrimSpace(name))
}

// ParseSlug reverses SynthesizeSlug.
func ParseSlug(slug string) (PetType, string, error) {
	rawType, rawName, ok := strings.Cut(slug, "/")
	if !ok {
		return "", "", ErrInvalidSlug
	}
	t, valid := ParsePetType(rawType)
	if !valid {
		return "", "", ErrInvalidSlug
	}
	name, err := url.PathUnescape(rawName)
	if err != nil || strings.TrimSpace(name) == "" {
		return "", "", ErrInvalidSlug
	}
	return t, name, nil
}

func seedEscape(seed string) string {
	return url.PathEscape(seed)
}
