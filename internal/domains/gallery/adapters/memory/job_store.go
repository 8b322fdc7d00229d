package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

var _ ports.JobStore = (*JobStore)(nil)

// JobStore keeps video jobs in memory for the in-process orchestrator.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]domain.VideoJob
	now  func() time.Time
}

// NewJobStore constructs an empty store.
func NewJobStore() *JobStore {
	return &JobStore{jobs: map[string]domain.VideoJob{}, now: time.Now}
}

// WithClock overrides the time source for deterministic testing.
func (s *JobStore) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Save stores job, stamping CreatedAt on first write.
func (s *JobStore) Save(_ context.Context, job domain.VideoJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = s.now()
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = job.CreatedAt
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *JobStore) Get(_ context.Context, id string) (*domain.VideoJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &job, nil
}

func (s *JobStore) Update(_ context.Context, id string, fn func(job *domain.VideoJob) error) (*domain.VideoJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if err := fn(&job); err != nil {
		stored := s.jobs[id]
		return &stored, err
	}
	s.jobs[id] = job
	return &job, nil
}
