package petapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewPetAPIClient(srv.URL+"/wp-json/pet-management/v1", WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return client
}

func TestListPets_SendsQueryAndDecodesStringPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/pet-management/v1/pets", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "12", r.URL.Query().Get("per_page"))
		require.Equal(t, "cat", r.URL.Query().Get("type"))
		require.False(t, r.URL.Query().Has("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"id": 4, "name": "Bengal", "slug": "bengal", "groups": [{"id": 2, "name": "Cat", "slug": "cat"}]}],
			"pagination": {"total": 50, "total_pages": 5, "current_page": "2", "per_page": "12", "from": 13, "to": 24, "has_more": true, "next_page": 3, "prev_page": 1}
		}`))
	})

	page, perPage, typ := 2, 12, "cat"
	resp, err := client.ListPets(context.Background(), &ListPetsParams{Page: &page, PerPage: &perPage, Type: &typ})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Equal(t, "Bengal", resp.Data[0].Name)
	require.NotNil(t, resp.Pagination)
	require.Equal(t, FlexInt(2), resp.Pagination.CurrentPage)
	require.Equal(t, FlexInt(12), resp.Pagination.PerPage)
	require.Equal(t, 3, *resp.Pagination.NextPage)
}

func TestListPets_EncodesSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "golden retriever", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"success": true, "data": []}`))
	})
	q := "golden retriever"
	resp, err := client.ListPets(context.Background(), &ListPetsParams{Q: &q})
	require.NoError(t, err)
	require.Nil(t, resp.Pagination)
}

func TestListPets_Failures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			check: func(t *testing.T, err error) {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				require.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
			},
		},
		{
			name: "unsuccessful envelope",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": false, "data": []}`))
			},
			check: func(t *testing.T, err error) { require.ErrorIs(t, err, ErrUnsuccessful) },
		},
		{
			name: "garbage",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
			check: func(t *testing.T, err error) { require.ErrorIs(t, err, ErrDecode) },
		},
		{
			name: "non numeric page string",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": true, "data": [], "pagination": {"current_page": "two"}}`))
			},
			check: func(t *testing.T, err error) { require.ErrorIs(t, err, ErrDecode) },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.handler)
			_, err := client.ListPets(context.Background(), nil)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestGetPetBySlug(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/pet-management/v1/pets/slug/shiba-inu" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(PetDetailResponse{Success: true, Data: &Pet{ID: 9, Name: "Shiba Inu", Slug: "shiba-inu"}})
	})

	pet, err := client.GetPetBySlug(context.Background(), "shiba-inu")
	require.NoError(t, err)
	require.Equal(t, int64(9), pet.ID)

	_, err = client.GetPetBySlug(context.Background(), "missing")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFlexInt(t *testing.T) {
	var p Pagination
	require.NoError(t, json.Unmarshal([]byte(`{"current_page": 3, "per_page": null}`), &p))
	require.Equal(t, FlexInt(3), p.CurrentPage)
	require.Zero(t, p.PerPage)

	require.NoError(t, json.Unmarshal([]byte(`{"current_page": " 7 "}`), &p))
	require.Equal(t, FlexInt(7), p.CurrentPage)
}

func TestNewPetAPIClient_RequiresBaseURL(t *testing.T) {
	_, err := NewPetAPIClient("  ")
	require.Error(t, err)
}
