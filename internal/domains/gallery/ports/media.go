package ports

import (
	"context"
	"io"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
)

// MediaGenerator produces images and serves generated clips.
type MediaGenerator interface {
	Enabled() bool
	// GenerateImage returns a data: URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
	OpenVideo(ctx context.Context, uri string) (io.ReadCloser, string, error)
}

// VideoGenerator drives the upstream long-running video operation.
type VideoGenerator interface {
	StartVideo(ctx context.Context, prompt string) (string, error)
	PollVideo(ctx context.Context, operation string) (*domain.VideoProgress, error)
}
