package petapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// NewListPetsRequest builds GET {server}/pets with form-style query parameters.
func NewListPetsRequest(ctx context.Context, server string, params *ListPetsParams) (*http.Request, error) {
	queryURL, err := operationURL(server, "/pets")
	if err != nil {
		return nil, err
	}
	if params != nil {
		queryValues := queryURL.Query()
		add := func(name string, value any) error {
			frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
			if err != nil {
				return err
			}
			parsed, err := url.ParseQuery(frag)
			if err != nil {
				return err
			}
			for k, vs := range parsed {
				for _, v := range vs {
					queryValues.Add(k, v)
				}
			}
			return nil
		}
		if params.Page != nil {
			if err := add("page", *params.Page); err != nil {
				return nil, err
			}
		}
		if params.PerPage != nil {
			if err := add("per_page", *params.PerPage); err != nil {
				return nil, err
			}
		}
		if params.Type != nil {
			if err := add("type", *params.Type); err != nil {
				return nil, err
			}
		}
		if params.Q != nil {
			if err := add("q", *params.Q); err != nil {
				return nil, err
			}
		}
		queryURL.RawQuery = queryValues.Encode()
	}
	return newGetRequest(ctx, queryURL)
}

// NewGetPetBySlugRequest builds GET {server}/pets/slug/{slug}.
func NewGetPetBySlugRequest(ctx context.Context, server, slug string) (*http.Request, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "slug", runtime.ParamLocationPath, slug)
	if err != nil {
		return nil, err
	}
	queryURL, err := operationURL(server, fmt.Sprintf("/pets/slug/%s", pathParam))
	if err != nil {
		return nil, err
	}
	return newGetRequest(ctx, queryURL)
}

func operationURL(server, path string) (*url.URL, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}
	operationPath := strings.TrimPrefix(path, "/")
	if !strings.HasSuffix(serverURL.Path, "/") {
		serverURL.Path += "/"
	}
	return serverURL.Parse(operationPath)
}

func newGetRequest(ctx context.Context, u *url.URL) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
