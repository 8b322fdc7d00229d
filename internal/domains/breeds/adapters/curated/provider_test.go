package curated

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	petapi "github.com/Apurer/pet-encyclopedia/internal/clients/http/petapi"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := petapi.NewPetAPIClient(srv.URL, petapi.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return NewProvider(client)
}

func TestFetchBreeds_TypeFilterAndPagination(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("type") != "cat" || q.Has("q") || q.Get("page") != "2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "data": [
			{"id": 11, "name": "Ragdoll", "slug": "ragdoll", "excerpt": "<p>Floppy</p>",
			 "groups": [{"id": 2, "name": "Cat", "slug": "cat"}, {"id": 8, "name": "Longhair", "slug": "longhair"}],
			 "featured_image": {"id": 1, "url": "https://cdn/ragdoll.jpg", "medium": "https://cdn/ragdoll-m.jpg"}}
		], "pagination": {"total": 50, "total_pages": 5, "current_page": "2", "per_page": "12"}}`))
	})

	res, err := p.FetchBreeds(context.Background(), domain.FilterState{Type: domain.PetTypeCat, Page: 2, PerPage: 12})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	pet := res.Records[0].(domain.CuratedPet)
	require.Equal(t, domain.PetTypeCat, pet.PetType())
	require.Equal(t, "https://cdn/ragdoll.jpg", pet.Featured.URL)

	require.NotNil(t, res.PageInfo)
	require.Equal(t, 5, res.PageInfo.TotalPages)
	require.Equal(t, 13, res.PageInfo.From)
	require.Equal(t, 24, res.PageInfo.To)
	require.Equal(t, 3, *res.PageInfo.NextPage)
}

func TestFetchBreeds_SearchSendsOnlyQuery(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "rag" || q.Has("type") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "data": []}`))
	})

	res, err := p.FetchBreeds(context.Background(), domain.FilterState{Query: "rag", Type: domain.PetTypeCat, Page: 1, PerPage: 12})
	require.NoError(t, err)
	require.Nil(t, res.PageInfo)
	require.Empty(t, res.Records)
}

func TestFetchBreeds_ErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
		kind error
	}{
		{"server error", "", http.StatusInternalServerError, domain.ErrUpstreamRejected},
		{"unsuccessful", `{"success": false}`, http.StatusOK, domain.ErrUpstreamRejected},
		{"garbage", `not json`, http.StatusOK, domain.ErrMalformedResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := p.FetchBreeds(context.Background(), domain.FilterState{Type: domain.PetTypeDog, Page: 1, PerPage: 12})
			require.ErrorIs(t, err, tc.kind)
		})
	}
}

func TestFetchBreeds_NotConfigured(t *testing.T) {
	_, err := NewProvider(nil).FetchBreeds(context.Background(), domain.FilterState{Page: 1, PerPage: 12})
	require.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestFetchPetBySlug_NotFoundKeepsStatus(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := p.FetchPetBySlug(context.Background(), "ghost")
	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, http.StatusNotFound, fetchErr.Status)
	require.Equal(t, domain.SourceCurated, fetchErr.Source)
}

func TestToPageInfo_FallsBackToRequest(t *testing.T) {
	info := ToPageInfo(&petapi.Pagination{Total: 30}, domain.FilterState{Page: 3, PerPage: 10})
	require.Equal(t, 3, info.CurrentPage)
	require.Equal(t, 3, info.TotalPages)
	require.False(t, info.HasMore)
}
