package ports

import (
	"context"

	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
)

// Repository stores gallery items (outbound/driven port).
type Repository interface {
	// List returns items newest first.
	List(ctx context.Context) ([]*gallerytypes.ItemProjection, error)
	Add(ctx context.Context, item domain.Item) (*gallerytypes.ItemProjection, error)
	// RecordVideo adds the item unless one already exists for item.JobID, in which case that one is returned.
	RecordVideo(ctx context.Context, item domain.Item) (*gallerytypes.ItemProjection, error)
}

// JobStore keeps video job state for the in-process orchestrator.
type JobStore interface {
	Save(ctx context.Context, job domain.VideoJob) error
	Get(ctx context.Context, id string) (*domain.VideoJob, error)
	// Update applies fn under the store lock and persists the result unless fn errors.
	Update(ctx context.Context, id string, fn func(job *domain.VideoJob) error) (*domain.VideoJob, error)
}
