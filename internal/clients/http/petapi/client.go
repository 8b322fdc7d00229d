package petapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrUnsuccessful is returned when the envelope reports success=false.
	ErrUnsuccessful = errors.New("pet API returned an unsuccessful response")
	// ErrDecode is returned when the body is not the documented envelope.
	ErrDecode = errors.New("decode pet API response")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pet API status: %s", e.Status)
}

// HTTPRequestDoer performs HTTP requests; *http.Client satisfies it.
type HTTPRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP transport.
func WithHTTPClient(doer HTTPRequestDoer) ClientOption {
	return func(c *Client) {
		if doer != nil {
			c.client = doer
		}
	}
}

// Client talks to the WordPress pet management REST API.
type Client struct {
	server string
	client HTTPRequestDoer
}

// NewPetAPIClient instantiates the client with sane defaults.
func NewPetAPIClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("pet API base URL is required")
	}
	c := &Client{server: baseURL, client: &http.Client{Timeout: 10 * time.Second}}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ListPets fetches one page of pets.
func (c *Client) ListPets(ctx context.Context, params *ListPetsParams) (*PetListResponse, error) {
	req, err := NewListPetsRequest(ctx, c.server, params)
	if err != nil {
		return nil, fmt.Errorf("build list pets request: %w", err)
	}
	var out PetListResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, ErrUnsuccessful
	}
	return &out, nil
}

// GetPetBySlug fetches a single pet by its slug.
func (c *Client) GetPetBySlug(ctx context.Context, slug string) (*Pet, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("pet slug is required")
	}
	req, err := NewGetPetBySlugRequest(ctx, c.server, slug)
	if err != nil {
		return nil, fmt.Errorf("build get pet request: %w", err)
	}
	var out PetDetailResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, ErrUnsuccessful
	}
	if out.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrDecode)
	}
	return out.Data, nil
}

func (c *Client) do(req *http.Request, into any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call pet API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
