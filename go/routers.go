// Package encyclopediaserver is the gin transport of the pet encyclopedia API.
package encyclopediaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers of every API section.
type ApiHandleFunctions struct {
	BreedAPI   BreedAPI
	GalleryAPI GalleryAPI
}

// NewRouter returns a new gin engine with every route registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers the routes on router. Middleware must already be attached.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes whose handler is not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	breeds := handleFunctions.BreedAPI
	gallery := handleFunctions.GalleryAPI
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", Healthz},
		{"ListBreeds", http.MethodGet, "/api/v1/breeds", breeds.handler(breeds.ListBreeds)},
		{"NavigateBreeds", http.MethodPost, "/api/v1/breeds/navigate", breeds.handler(breeds.NavigateBreeds)},
		{"GetGeneratedBreed", http.MethodGet, "/api/v1/breeds/:type/:name", breeds.handler(breeds.GetGeneratedBreed)},
		{"GetPetBySlug", http.MethodGet, "/api/v1/pets/:slug", breeds.handler(breeds.GetPetBySlug)},
		{"ListGallery", http.MethodGet, "/api/v1/gallery", gallery.handler(gallery.ListGallery)},
		{"GetGalleryCapabilities", http.MethodGet, "/api/v1/gallery/capabilities", gallery.handler(gallery.GetGalleryCapabilities)},
		{"GenerateGalleryImage", http.MethodPost, "/api/v1/gallery/images", gallery.handler(gallery.GenerateGalleryImage)},
		{"StartGalleryVideo", http.MethodPost, "/api/v1/gallery/videos", gallery.handler(gallery.StartGalleryVideo)},
		{"GetGalleryVideo", http.MethodGet, "/api/v1/gallery/videos/:id", gallery.handler(gallery.GetGalleryVideo)},
		{"CancelGalleryVideo", http.MethodDelete, "/api/v1/gallery/videos/:id", gallery.handler(gallery.CancelGalleryVideo)},
		{"StreamGalleryVideo", http.MethodGet, "/api/v1/gallery/videos/:id/content", gallery.handler(gallery.StreamGalleryVideo)},
	}
}

// handler returns nil when the section has no service, so the route falls back to DefaultHandleFunc.
func (api *BreedAPI) handler(h gin.HandlerFunc) gin.HandlerFunc {
	if api.service == nil {
		return nil
	}
	return h
}

func (api *GalleryAPI) handler(h gin.HandlerFunc) gin.HandlerFunc {
	if api.service == nil {
		return nil
	}
	return h
}
