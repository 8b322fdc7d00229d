package gallery

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/platform/temporal/sequences"
)

const (
	// VideoGenerationWorkflowName is the public identifier for registering the workflow.
	VideoGenerationWorkflowName = "gallery.workflows.VideoGeneration"
	// VideoGenerationTaskQueue is the queue consumed by the worker processing video jobs.
	VideoGenerationTaskQueue = "GALLERY_VIDEO"
	// StatusQuery returns the current domain.VideoJob.
	StatusQuery = "status"
)

// VideoGenerationWorkflowInput captures the payload of one video job.
type VideoGenerationWorkflowInput struct {
	Prompt       string
	PollInterval time.Duration
	MaxWait      time.Duration
	TraceID      string
}

// VideoGenerationWorkflow runs a video job. The workflow ID doubles as the job ID.
func VideoGenerationWorkflow(ctx workflow.Context, input VideoGenerationWorkflowInput) (*domain.VideoJob, error) {
	logger := workflow.GetLogger(ctx)
	jobID := workflow.GetInfo(ctx).WorkflowExecution.ID
	job := domain.NewVideoJob(jobID, input.Prompt, workflow.Now(ctx))
	if err := workflow.SetQueryHandler(ctx, StatusQuery, func() (domain.VideoJob, error) {
		return job, nil
	}); err != nil {
		return nil, err
	}

	logger.Info("VideoGenerationWorkflow started", withTraceID(input.TraceID, "jobId", jobID)...)
	err := sequences.RunVideoGenerationSequence(ctx, sequences.VideoGenerationParams{
		Prompt:       input.Prompt,
		PollInterval: input.PollInterval,
		MaxWait:      input.MaxWait,
	}, &job)
	switch {
	case err == nil:
		logger.Info("VideoGenerationWorkflow completed", withTraceID(input.TraceID, "jobId", jobID, "status", job.Status)...)
		return &job, nil
	case temporal.IsCanceledError(err):
		_ = job.Cancel(workflow.Now(ctx))
		logger.Info("VideoGenerationWorkflow cancelled", withTraceID(input.TraceID, "jobId", jobID)...)
		return &job, err
	default:
		logger.Error("VideoGenerationWorkflow failed", withTraceID(input.TraceID, "jobId", jobID, "error", err)...)
		return &job, err
	}
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
