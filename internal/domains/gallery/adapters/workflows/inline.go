package workflows

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxWait      = 10 * time.Minute
)

// ErrWorkflowsClosed is returned by StartVideo once Close has been called.
var ErrWorkflowsClosed = errors.New("video workflows closed")

// InlineVideoWorkflows runs video jobs on goroutines inside the API process.
// Jobs do not survive a restart. Close stops every running job.
type InlineVideoWorkflows struct {
	videos       ports.VideoGenerator
	jobs         ports.JobStore
	pollInterval time.Duration
	maxWait      time.Duration
	now          func() time.Time
	newID        func() string

	base    context.Context
	stop    context.CancelFunc
	mu      sync.Mutex
	closed  bool
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// NewInlineVideoWorkflows builds the in-process orchestrator. Zero durations select the defaults.
func NewInlineVideoWorkflows(videos ports.VideoGenerator, jobs ports.JobStore, pollInterval, maxWait time.Duration) *InlineVideoWorkflows {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	base, stop := context.WithCancel(context.Background())
	return &InlineVideoWorkflows{
		videos:       videos,
		jobs:         jobs,
		pollInterval: pollInterval,
		maxWait:      maxWait,
		now:          time.Now,
		newID:        uuid.NewString,
		base:         base,
		stop:         stop,
		cancels:      map[string]context.CancelFunc{},
	}
}

// StartVideo records a pending job and runs it in the background.
func (o *InlineVideoWorkflows) StartVideo(ctx context.Context, prompt string) (*domain.VideoJob, error) {
	// wg.Add only happens under mu while the orchestrator is open.
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return nil, ErrWorkflowsClosed
	}
	o.wg.Add(1)
	o.mu.Unlock()

	job := domain.NewVideoJob(o.newID(), prompt, o.now())
	if err := o.jobs.Save(ctx, job); err != nil {
		o.wg.Done()
		return nil, err
	}

	// Detach from the request but keep its trace.
	runCtx := oteltrace.ContextWithSpanContext(o.base, oteltrace.SpanContextFromContext(ctx))
	runCtx, cancel := context.WithCancel(runCtx)
	o.mu.Lock()
	o.cancels[job.ID] = cancel
	o.mu.Unlock()

	go o.run(runCtx, job.ID, prompt)
	return &job, nil
}

func (o *InlineVideoWorkflows) VideoStatus(ctx context.Context, id string) (*domain.VideoJob, error) {
	return o.jobs.Get(ctx, id)
}

// CancelVideo marks the job cancelled and stops its goroutine.
func (o *InlineVideoWorkflows) CancelVideo(ctx context.Context, id string) (*domain.VideoJob, error) {
	job, err := o.jobs.Update(ctx, id, func(j *domain.VideoJob) error {
		return j.Cancel(o.now())
	})
	if err != nil {
		return job, err
	}
	o.mu.Lock()
	if cancel, ok := o.cancels[id]; ok {
		cancel()
	}
	o.mu.Unlock()
	return job, nil
}

// Close cancels all running jobs and waits for their goroutines to exit.
// Later StartVideo calls fail with ErrWorkflowsClosed.
func (o *InlineVideoWorkflows) Close() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
	o.stop()
	o.wg.Wait()
}

func (o *InlineVideoWorkflows) run(ctx context.Context, id, prompt string) {
	defer o.wg.Done()
	defer o.forget(id)

	operation, err := o.videos.StartVideo(ctx, prompt)
	if err != nil {
		o.settle(ctx, id, func(j *domain.VideoJob) { j.Fail(err.Error(), o.now()) })
		return
	}
	o.update(id, func(j *domain.VideoJob) { j.Started(operation, o.now()) })

	deadline := time.NewTimer(o.maxWait)
	defer deadline.Stop()
	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			o.update(id, func(j *domain.VideoJob) { _ = j.Cancel(o.now()) })
			return
		case <-deadline.C:
			o.update(id, func(j *domain.VideoJob) { j.Fail(domain.TimedOutMessage, o.now()) })
			return
		case <-ticker.C:
			progress, err := o.videos.PollVideo(ctx, operation)
			if err != nil {
				o.settle(ctx, id, func(j *domain.VideoJob) { j.Fail(err.Error(), o.now()) })
				return
			}
			var terminal bool
			o.update(id, func(j *domain.VideoJob) { terminal = j.Apply(*progress, o.now()) })
			if terminal {
				return
			}
		}
	}
}

// settle records a failure, or a cancellation when ctx was the cause.
func (o *InlineVideoWorkflows) settle(ctx context.Context, id string, fail func(j *domain.VideoJob)) {
	if ctx.Err() != nil {
		o.update(id, func(j *domain.VideoJob) { _ = j.Cancel(o.now()) })
		return
	}
	o.update(id, fail)
}

func (o *InlineVideoWorkflows) update(id string, fn func(j *domain.VideoJob)) {
	_, _ = o.jobs.Update(context.Background(), id, func(j *domain.VideoJob) error {
		fn(j)
		return nil
	})
}

func (o *InlineVideoWorkflows) forget(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if cancel, ok := o.cancels[id]; ok {
		cancel()
		delete(o.cancels, id)
	}
}
