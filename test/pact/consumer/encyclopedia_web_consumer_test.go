//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	pacttest "github.com/Apurer/pet-encyclopedia/test/pact"
)

type galleryItem struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type capabilities struct {
	GenerationEnabled bool `json:"generationEnabled"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
}

func TestEncyclopediaWebContract(t *testing.T) {
	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.WebConsumer,
		Provider: pacttest.EncyclopediaProvider,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateGallerySeed).
		UponReceiving("a request for the gallery").
		WithRequest("GET", "/api/v1/gallery").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(matchers.Map{
				"id":    matchers.Like("seed-1"),
				"type":  matchers.Term("image", "image|video"),
				"title": matchers.Like("Curious Pup"),
				"url":   matchers.Like("https://picsum.photos/id/1062/800/800"),
			}, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateGallerySeed).
		UponReceiving("a request for the generation capabilities").
		WithRequest("GET", "/api/v1/gallery/capabilities").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"generationEnabled": matchers.Like(false),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateNoVideoJob).
		UponReceiving("a request for an unknown video job").
		WithRequest("GET", "/api/v1/gallery/videos/"+pacttest.MissingJobID).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.Like("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		baseURL := fmt.Sprintf("http://%s:%d", config.Host, config.Port)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var items []galleryItem
		if status, err := getJSON(ctx, baseURL+"/api/v1/gallery", &items); err != nil || status != http.StatusOK {
			return fmt.Errorf("list gallery: status %d: %v", status, err)
		}
		if len(items) == 0 || items[0].URL == "" {
			return fmt.Errorf("expected gallery items, got %+v", items)
		}

		var caps capabilities
		if status, err := getJSON(ctx, baseURL+"/api/v1/gallery/capabilities", &caps); err != nil || status != http.StatusOK {
			return fmt.Errorf("capabilities: status %d: %v", status, err)
		}

		var problem problemDetail
		status, err := getJSON(ctx, baseURL+"/api/v1/gallery/videos/"+pacttest.MissingJobID, &problem)
		if err != nil {
			return fmt.Errorf("get video job: %w", err)
		}
		if status != http.StatusNotFound || problem.Status != http.StatusNotFound {
			return fmt.Errorf("expected not found problem, got %d %+v", status, problem)
		}
		return nil
	})
	require.NoError(t, err)
}

func getJSON(ctx context.Context, url string, into any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(into)
}
