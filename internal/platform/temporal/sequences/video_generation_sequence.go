package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	galleryactivities "github.com/Apurer/pet-encyclopedia/internal/platform/temporal/activities/gallery"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxWait      = 10 * time.Minute
	// TimeoutErrorType tags the application error raised when MaxWait elapses.
	TimeoutErrorType = "VideoGenerationTimeout"
)

// VideoGenerationParams configures the polling loop.
type VideoGenerationParams struct {
	Prompt       string
	PollInterval time.Duration
	MaxWait      time.Duration
}

// RunVideoGenerationSequence starts the upstream operation and polls it until it finishes,
// fails or exceeds MaxWait. job is updated in place so query handlers observe progress.
// Cancellation errors are returned untouched and leave job for the caller to settle.
func RunVideoGenerationSequence(ctx workflow.Context, params VideoGenerationParams, job *domain.VideoJob) error {
	logger := workflow.GetLogger(ctx)
	interval := params.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	maxWait := params.MaxWait
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	// Upstream calls are attempted once; a failure ends the job.
	actx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})

	var operation string
	if err := workflow.ExecuteActivity(actx, galleryactivities.StartVideoActivityName, params.Prompt).Get(ctx, &operation); err != nil {
		return failJob(ctx, job, err)
	}
	job.Started(operation, workflow.Now(ctx))
	logger.Info("video generation sequence started", "operation", operation)

	deadline := workflow.Now(ctx).Add(maxWait)
	for {
		if err := workflow.Sleep(ctx, interval); err != nil {
			return err
		}
		var progress domain.VideoProgress
		if err := workflow.ExecuteActivity(actx, galleryactivities.PollVideoActivityName, operation).Get(ctx, &progress); err != nil {
			return failJob(ctx, job, err)
		}
		if job.Apply(progress, workflow.Now(ctx)) {
			logger.Info("video generation sequence finished", "operation", operation, "status", job.Status)
			return nil
		}
		if !workflow.Now(ctx).Before(deadline) {
			job.Fail(domain.TimedOutMessage, workflow.Now(ctx))
			logger.Error("video generation sequence timed out", "operation", operation)
			return temporal.NewNonRetryableApplicationError(domain.TimedOutMessage, TimeoutErrorType, nil)
		}
	}
}

func failJob(ctx workflow.Context, job *domain.VideoJob, err error) error {
	if temporal.IsCanceledError(err) {
		return err
	}
	job.Fail(err.Error(), workflow.Now(ctx))
	workflow.GetLogger(ctx).Error("video generation sequence failed", "error", err)
	return err
}
