package memory

import (
	"context"
	"sync"
	"time"

	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
	"github.com/Apurer/pet-encyclopedia/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory gallery. Items are kept in insertion order.
type Repository struct {
	mu    sync.RWMutex
	items []*gallerytypes.ItemProjection
	byJob map[string]*gallerytypes.ItemProjection
	now   func() time.Time
}

// NewRepository returns an empty gallery.
func NewRepository() *Repository {
	return &Repository{byJob: map[string]*gallerytypes.ItemProjection{}, now: time.Now}
}

// NewSeededRepository returns a gallery holding the stock tiles.
func NewSeededRepository() *Repository {
	r := NewRepository()
	seeds := domain.SeedItems()
	for i := len(seeds) - 1; i >= 0; i-- {
		r.insert(seeds[i])
	}
	return r
}

// WithClock overrides the time source for deterministic testing.
func (r *Repository) WithClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

func (r *Repository) List(_ context.Context) ([]*gallerytypes.ItemProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*gallerytypes.ItemProjection, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		list = append(list, clone(r.items[i]))
	}
	return list, nil
}

func (r *Repository) Add(_ context.Context, item domain.Item) (*gallerytypes.ItemProjection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.insert(item)), nil
}

func (r *Repository) RecordVideo(_ context.Context, item domain.Item) (*gallerytypes.ItemProjection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byJob[item.JobID]; ok && item.JobID != "" {
		return clone(existing), nil
	}
	return clone(r.insert(item)), nil
}

// insert must be called with the lock held or before the repository is shared.
func (r *Repository) insert(item domain.Item) *gallerytypes.ItemProjection {
	stored := projection.New(&item, r.now())
	r.items = append(r.items, stored)
	if item.JobID != "" {
		r.byJob[item.JobID] = stored
	}
	return stored
}

func clone(p *gallerytypes.ItemProjection) *gallerytypes.ItemProjection {
	return projection.Map(p, func(item *domain.Item) *domain.Item {
		copied := *item
		return &copied
	})
}
