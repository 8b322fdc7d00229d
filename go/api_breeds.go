package encyclopediaserver

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	breedhttpmapper "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/adapters/http/mapper"
	breedtypes "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	breedsports "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/ports"
)

// BreedAPI wires HTTP transport with the breeds bounded context service.
type BreedAPI struct {
	service breedsports.Service
}

// NewBreedAPI creates a BreedAPI backed by the provided service.
func NewBreedAPI(service breedsports.Service) BreedAPI {
	return BreedAPI{service: service}
}

// Get /api/v1/breeds
// Lists one page of breeds for the query state in the URL
func (api *BreedAPI) ListBreeds(c *gin.Context) {
	filter := domain.ParseFilter(c.Request.URL.Query())
	listing, err := api.service.ListBreeds(c.Request.Context(), breedtypes.ListBreedsInput{Filter: filter})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breedhttpmapper.FromListing(listing))
}

// Post /api/v1/breeds/navigate
// Applies a pager transition and returns the next query string
func (api *BreedAPI) NavigateBreeds(c *gin.Context) {
	var payload breedhttpmapper.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	input, err := breedhttpmapper.ToNavigateInput(payload)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := api.service.Navigate(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breedhttpmapper.FromNavigateResult(result))
}

// Get /api/v1/breeds/:type/:name
// Generates a breed profile with an illustration
func (api *BreedAPI) GetGeneratedBreed(c *gin.Context) {
	input := breedtypes.GeneratedDetailInput{Slug: c.Param("type") + "/" + url.PathEscape(c.Param("name"))}
	detail, err := api.service.GetGeneratedDetail(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breedhttpmapper.FromGeneratedDetail(detail))
}

// Get /api/v1/pets/:slug
// Loads a curated pet by slug
func (api *BreedAPI) GetPetBySlug(c *gin.Context) {
	detail, err := api.service.GetCuratedDetail(c.Request.Context(), breedtypes.CuratedDetailInput{Slug: c.Param("slug")})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breedhttpmapper.FromCuratedDetail(detail))
}
