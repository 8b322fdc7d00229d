//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	petapi "github.com/Apurer/pet-encyclopedia/internal/clients/http/petapi"
	pacttest "github.com/Apurer/pet-encyclopedia/test/pact"
)

func TestPetManagementContract(t *testing.T) {
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.EncyclopediaConsumer,
		Provider: pacttest.PetManagementProvider,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	example := pacttest.ExamplePet()
	petMatcher := matchers.Map{
		"id":      matchers.Like(example["id"]),
		"name":    matchers.Like(example["name"]),
		"slug":    matchers.Like(example["slug"]),
		"excerpt": matchers.Like(example["excerpt"]),
		"groups": matchers.EachLike(matchers.Map{
			"id":   matchers.Like(1),
			"name": matchers.Like("Dog"),
			"slug": matchers.Term("dog", "^[a-z0-9-]+$"),
		}, 1),
		"featured_image": matchers.Map{
			"url":    matchers.Like("https://pets.example/uploads/golden.jpg"),
			"medium": matchers.Like("https://pets.example/uploads/golden-300x300.jpg"),
		},
	}

	pact.AddInteraction().
		Given(pacttest.StatePetsExist).
		UponReceiving("a request for the first page of dogs").
		WithRequest("GET", "/pets", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("page", matchers.S("1"))
			b.Query("per_page", matchers.S("12"))
			b.Query("type", matchers.S("dog"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.JSONBody(matchers.Map{
				"success": matchers.Like(true),
				"data":    matchers.EachLike(petMatcher, 1),
				"pagination": matchers.Map{
					"total":        matchers.Like(1),
					"total_pages":  matchers.Like(1),
					"current_page": matchers.Like(1),
					"per_page":     matchers.Like(12),
				},
			})
		})

	pact.AddInteraction().
		Given(pacttest.StatePetBySlug).
		UponReceiving("a request for a pet by slug").
		WithRequest("GET", "/pets/slug/"+pacttest.ExistingSlug).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.JSONBody(matchers.Map{
				"success": matchers.Like(true),
				"data":    petMatcher,
			})
		})

	pact.AddInteraction().
		Given(pacttest.StatePetMissing).
		UponReceiving("a request for an unknown slug").
		WithRequest("GET", "/pets/slug/"+pacttest.MissingSlug).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.JSONBody(matchers.Map{
				"success": matchers.Like(false),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client, err := petapi.NewPetAPIClient(fmt.Sprintf("http://%s:%d", config.Host, config.Port))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		page, perPage, petType := 1, 12, "dog"
		list, err := client.ListPets(ctx, &petapi.ListPetsParams{Page: &page, PerPage: &perPage, Type: &petType})
		if err != nil {
			return fmt.Errorf("list pets: %w", err)
		}
		if len(list.Data) == 0 || list.Pagination == nil {
			return fmt.Errorf("expected one page of pets, got %+v", list)
		}

		pet, err := client.GetPetBySlug(ctx, pacttest.ExistingSlug)
		if err != nil {
			return fmt.Errorf("get pet: %w", err)
		}
		if pet.Slug == "" || len(pet.Groups) == 0 {
			return fmt.Errorf("expected slug and groups, got %+v", pet)
		}

		_, err = client.GetPetBySlug(ctx, pacttest.MissingSlug)
		var statusErr *petapi.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
			return fmt.Errorf("expected 404 status error, got %v", err)
		}
		return nil
	})
	require.NoError(t, err)
}
