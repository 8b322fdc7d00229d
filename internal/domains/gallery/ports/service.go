package ports

import (
	"context"

	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
)

// Service defines the gallery use cases exposed to adapters (inbound/driving port).
type Service interface {
	ListItems(ctx context.Context) ([]*gallerytypes.ItemProjection, error)
	Capabilities(ctx context.Context) gallerytypes.Capabilities
	GenerateImage(ctx context.Context, input gallerytypes.GenerateInput) (*gallerytypes.ItemProjection, error)
	StartVideo(ctx context.Context, input gallerytypes.GenerateInput) (*gallerytypes.VideoJobView, error)
	GetVideoJob(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoJobView, error)
	CancelVideoJob(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoJobView, error)
	OpenVideo(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoContent, error)
}
