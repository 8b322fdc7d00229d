package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
)

var (
	// ErrInvalidInput signals a request the controller cannot act on.
	ErrInvalidInput = errors.New("invalid breed request")
	// ErrBreedNotFound signals the upstream has no record for a detail lookup.
	ErrBreedNotFound = errors.New("breed not found")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidSlug) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

// mapDetailError additionally turns an upstream 404 into ErrBreedNotFound.
func mapDetailError(err error) error {
	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) && fetchErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrBreedNotFound, err)
	}
	return mapError(err)
}
