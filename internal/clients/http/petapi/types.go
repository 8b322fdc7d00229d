package petapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PetImage is a media attachment as rendered by the pet management API.
type PetImage struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Thumbnail string `json:"thumbnail"`
	Medium    string `json:"medium"`
	Alt       string `json:"alt"`
}

// PetGroup is a taxonomy term; the species is encoded as the "dog" or "cat" group.
type PetGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Pet is the resource served by /pets.
type Pet struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Excerpt       string     `json:"excerpt"`
	Height        string     `json:"height"`
	Weight        string     `json:"weight"`
	Lifespan      string     `json:"lifespan"`
	Story         string     `json:"story"`
	Gallery       []PetImage `json:"gallery"`
	Groups        []PetGroup `json:"groups"`
	FeaturedImage *PetImage  `json:"featured_image"`
	DateCreated   string     `json:"date_created"`
	DateModified  string     `json:"date_modified"`
	Slug          string     `json:"slug"`
}

// Pagination is the optional envelope section of a list response.
type Pagination struct {
	Total       int     `json:"total"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage FlexInt `json:"current_page"`
	PerPage     FlexInt `json:"per_page"`
	From        int     `json:"from"`
	To          int     `json:"to"`
	HasMore     bool    `json:"has_more"`
	NextPage    *int    `json:"next_page"`
	PrevPage    *int    `json:"prev_page"`
}

// PetListResponse is the envelope of GET /pets.
type PetListResponse struct {
	Success    bool        `json:"success"`
	Data       []Pet       `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// PetDetailResponse is the envelope of GET /pets/slug/{slug}.
type PetDetailResponse struct {
	Success bool `json:"success"`
	Data    *Pet `json:"data"`
}

// ListPetsParams defines the query parameters of GET /pets.
type ListPetsParams struct {
	Page    *int    `form:"page,omitempty" json:"page,omitempty"`
	PerPage *int    `form:"per_page,omitempty" json:"per_page,omitempty"`
	Type    *string `form:"type,omitempty" json:"type,omitempty"`
	Q       *string `form:"q,omitempty" json:"q,omitempty"`
}

// FlexInt decodes an integer that the upstream sometimes serializes as a string.
type FlexInt int

// UnmarshalJSON accepts 3, "3" and null.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("flexint: %q is not an integer", raw)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexint: %w", err)
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON always writes a number.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}
