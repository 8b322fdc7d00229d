package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
	galleryworkflows "github.com/Apurer/pet-encyclopedia/internal/platform/temporal/workflows/gallery"
)

var (
	_ ports.VideoOrchestrator = (*TemporalVideoWorkflows)(nil)
	_ ports.VideoOrchestrator = (*InlineVideoWorkflows)(nil)
)

// TemporalVideoWorkflows runs video jobs on a Temporal cluster.
type TemporalVideoWorkflows struct {
	client       client.Client
	taskQueue    string
	pollInterval time.Duration
	maxWait      time.Duration
	now          func() time.Time
}

// NewTemporalVideoWorkflows wires a Temporal client into the orchestrator.
func NewTemporalVideoWorkflows(c client.Client, pollInterval, maxWait time.Duration) *TemporalVideoWorkflows {
	return &TemporalVideoWorkflows{
		client:       c,
		taskQueue:    galleryworkflows.VideoGenerationTaskQueue,
		pollInterval: pollInterval,
		maxWait:      maxWait,
		now:          time.Now,
	}
}

// StartVideo starts the workflow and returns the pending job without waiting for it.
func (o *TemporalVideoWorkflows) StartVideo(ctx context.Context, prompt string) (*domain.VideoJob, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal video workflows not configured")
	}
	jobID := fmt.Sprintf("gallery-video-%s", uuid.NewString())
	options := client.StartWorkflowOptions{
		ID:        jobID,
		TaskQueue: o.taskQueue,
	}
	_, err := o.client.ExecuteWorkflow(ctx, options, galleryworkflows.VideoGenerationWorkflowName, galleryworkflows.VideoGenerationWorkflowInput{
		Prompt:       prompt,
		PollInterval: o.pollInterval,
		MaxWait:      o.maxWait,
		TraceID:      workflowTraceID(ctx),
	})
	if err != nil {
		return nil, err
	}
	job := domain.NewVideoJob(jobID, prompt, o.now())
	return &job, nil
}

// VideoStatus queries the workflow, which answers for running and closed executions alike.
func (o *TemporalVideoWorkflows) VideoStatus(ctx context.Context, id string) (*domain.VideoJob, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal video workflows not configured")
	}
	value, err := o.client.QueryWorkflow(ctx, id, "", galleryworkflows.StatusQuery)
	if err != nil {
		return nil, mapTemporalError(err)
	}
	var job domain.VideoJob
	if err := value.Get(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CancelVideo requests cancellation of a live workflow.
func (o *TemporalVideoWorkflows) CancelVideo(ctx context.Context, id string) (*domain.VideoJob, error) {
	job, err := o.VideoStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status.Terminal() {
		return job, domain.ErrJobFinished
	}
	if err := o.client.CancelWorkflow(ctx, id, ""); err != nil {
		return nil, mapTemporalError(err)
	}
	_ = job.Cancel(o.now())
	return job, nil
}

func mapTemporalError(err error) error {
	var notFound *serviceerror.NotFound
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: %w", domain.ErrJobNotFound, err)
	}
	return err
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
