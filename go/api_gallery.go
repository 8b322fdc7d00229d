package encyclopediaserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	galleryhttpmapper "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/http/mapper"
	galleryapp "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application"
	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
	galleryports "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

// GalleryAPI exposes the AI lab.
type GalleryAPI struct {
	service galleryports.Service
}

// NewGalleryAPI creates a GalleryAPI backed by the provided service.
func NewGalleryAPI(service galleryports.Service) GalleryAPI {
	return GalleryAPI{service: service}
}

// Get /api/v1/gallery
func (api *GalleryAPI) ListGallery(c *gin.Context) {
	items, err := api.service.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleryhttpmapper.FromProjectionList(items))
}

// Get /api/v1/gallery/capabilities
func (api *GalleryAPI) GetGalleryCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, galleryhttpmapper.FromCapabilities(api.service.Capabilities(c.Request.Context())))
}

// Post /api/v1/gallery/images
// Generates an image and adds it to the gallery
func (api *GalleryAPI) GenerateGalleryImage(c *gin.Context) {
	var payload galleryhttpmapper.GenerateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	item, err := api.service.GenerateImage(c.Request.Context(), galleryhttpmapper.ToGenerateInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, galleryhttpmapper.FromProjection(item))
}

// Post /api/v1/gallery/videos
// Starts a video job; poll the Location header for its status
func (api *GalleryAPI) StartGalleryVideo(c *gin.Context) {
	var payload galleryhttpmapper.GenerateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	view, err := api.service.StartVideo(c.Request.Context(), galleryhttpmapper.ToGenerateInput(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/v1/gallery/videos/"+view.Job.ID)
	c.JSON(http.StatusAccepted, galleryhttpmapper.FromVideoJobView(view, contentPath(view.Job.ID)))
}

// Get /api/v1/gallery/videos/:id
func (api *GalleryAPI) GetGalleryVideo(c *gin.Context) {
	id := c.Param("id")
	view, err := api.service.GetVideoJob(c.Request.Context(), gallerytypes.VideoJobInput{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleryhttpmapper.FromVideoJobView(view, contentPath(id)))
}

// Delete /api/v1/gallery/videos/:id
func (api *GalleryAPI) CancelGalleryVideo(c *gin.Context) {
	id := c.Param("id")
	view, err := api.service.CancelVideoJob(c.Request.Context(), gallerytypes.VideoJobInput{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, galleryhttpmapper.FromVideoJobView(view, contentPath(id)))
}

// Get /api/v1/gallery/videos/:id/content
// Streams the generated clip
func (api *GalleryAPI) StreamGalleryVideo(c *gin.Context) {
	content, err := api.service.OpenVideo(c.Request.Context(), gallerytypes.VideoJobInput{ID: c.Param("id")})
	if err != nil {
		respondError(c, err)
		return
	}
	defer content.Body.Close()
	c.DataFromReader(http.StatusOK, -1, content.ContentType, content.Body, nil)
}

func contentPath(id string) string {
	return fmt.Sprintf(galleryapp.ContentPathFormat, id)
}
