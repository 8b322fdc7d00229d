package encyclopediaserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	breedsapp "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application"
	breedsdomain "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	galleryapp "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application"
	gallerydomain "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	apierrors "github.com/Apurer/pet-encyclopedia/internal/shared/errors"
)

var problems = apierrors.NewResponder("", breedsProblem, galleryProblem)

// respondError renders err as a problem. Nothing is written once the client has gone away.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil {
		c.Abort()
		return
	}
	problems.RespondError(c, err)
}

func respondBadRequest(c *gin.Context, err error) {
	problems.BadRequest(c, err.Error())
}

func breedsProblem(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, breedsapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, breedsapp.ErrBreedNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, breedsdomain.ErrConfiguration):
		return apierrors.ErrServiceUnavailable.WithDetail(err.Error()), true
	}
	var fetchErr *breedsdomain.FetchError
	if errors.As(err, &fetchErr) {
		return apierrors.NewUpstreamProblem(string(fetchErr.Source), fetchErr.Status, err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func galleryProblem(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, galleryapp.ErrInvalidInput):
		return apierrors.NewValidationProblem(map[string]string{"prompt": err.Error()}).WithDetail(err.Error()), true
	case errors.Is(err, galleryapp.ErrGenerationUnavailable):
		return apierrors.ErrServiceUnavailable.WithDetail(err.Error()), true
	case errors.Is(err, galleryapp.ErrGenerationFailed):
		return apierrors.NewUpstreamProblem(string(breedsdomain.SourceGenerative), 0, err.Error()), true
	case errors.Is(err, gallerydomain.ErrJobNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, gallerydomain.ErrJobFinished), errors.Is(err, gallerydomain.ErrVideoNotReady):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
