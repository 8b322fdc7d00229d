//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"

	encyclopediaserver "github.com/Apurer/pet-encyclopedia/go"
	"github.com/Apurer/pet-encyclopedia/internal/clients/gemini"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/adapters/curated"
	breedsapp "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application"
	gallerygenerative "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/generative"
	gallerymemory "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/memory"
	galleryobs "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/observability"
	galleryworkflows "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/workflows"
	galleryapp "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application"
	pacttest "github.com/Apurer/pet-encyclopedia/test/pact"
)

func TestEncyclopediaProviderPact(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := newContractProviderServer(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t, pacttest.WebConsumer, pacttest.EncyclopediaProvider))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	noop := func(bool, models.ProviderState) (models.ProviderStateResponse, error) { return nil, nil }
	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: server.URL,
		Provider:        pacttest.EncyclopediaProvider,
		PactFiles:       []string{pactFile},
		StateHandlers: models.StateHandlers{
			pacttest.StateGallerySeed: noop,
			pacttest.StateNoVideoJob:  noop,
		},
	})
	require.NoError(t, err)
}

// newContractProviderServer runs the real router over the seeded gallery with generation disabled.
func newContractProviderServer(t testing.TB) *httptest.Server {
	t.Helper()

	media := gallerygenerative.NewMedia(gemini.New(gemini.Config{}))
	videos := galleryworkflows.NewInlineVideoWorkflows(media, gallerymemory.NewJobStore(), time.Second, time.Minute)
	t.Cleanup(videos.Close)
	galleryService := galleryobs.New(galleryapp.NewService(gallerymemory.NewSeededRepository(), media, videos))

	catalog := curated.NewProvider(nil)
	breedService := breedsapp.NewService(catalog, catalog, nil, nil)

	router := gin.New()
	router.Use(gin.Recovery())
	router = encyclopediaserver.NewRouterWithGinEngine(router, encyclopediaserver.ApiHandleFunctions{
		BreedAPI:   encyclopediaserver.NewBreedAPI(breedService),
		GalleryAPI: encyclopediaserver.NewGalleryAPI(galleryService),
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}
