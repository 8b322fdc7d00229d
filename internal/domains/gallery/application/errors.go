package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid gallery input")
	// ErrGenerationUnavailable is returned when no generation credential is configured.
	ErrGenerationUnavailable = errors.New("generation is not configured")
	// ErrGenerationFailed wraps an upstream generation failure.
	ErrGenerationFailed = errors.New("generation failed")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyPrompt) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
