package ports

import (
	"context"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
)

// VideoOrchestrator runs video jobs either durably or in-process.
type VideoOrchestrator interface {
	StartVideo(ctx context.Context, prompt string) (*domain.VideoJob, error)
	VideoStatus(ctx context.Context, id string) (*domain.VideoJob, error)
	CancelVideo(ctx context.Context, id string) (*domain.VideoJob, error)
}
