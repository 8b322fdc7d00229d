package gallery

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	galleryports "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

const (
	// StartVideoActivityName submits a video generation upstream.
	StartVideoActivityName = "gallery.activities.StartVideo"
	// PollVideoActivityName refreshes an upstream video operation once.
	PollVideoActivityName = "gallery.activities.PollVideo"
)

// Activities groups activities that talk to the video generation upstream.
type Activities struct {
	videos galleryports.VideoGenerator
}

// NewActivities wires the video generator into the Temporal activities bundle.
func NewActivities(videos galleryports.VideoGenerator) *Activities {
	return &Activities{videos: videos}
}

// StartVideo returns the upstream operation name.
func (a *Activities) StartVideo(ctx context.Context, prompt string) (string, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.videos == nil {
		logger.Error("video activities not initialized")
		return "", errors.New("video activities not initialized")
	}
	logger.Info("StartVideo activity started")
	operation, err := a.videos.StartVideo(ctx, prompt)
	if err != nil {
		logger.Error("StartVideo activity failed", "error", err)
		return "", err
	}
	logger.Info("StartVideo activity completed", "operation", operation)
	return operation, nil
}

// PollVideo returns the current progress of operation.
func (a *Activities) PollVideo(ctx context.Context, operation string) (*domain.VideoProgress, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.videos == nil {
		logger.Error("video activities not initialized", "operation", operation)
		return nil, errors.New("video activities not initialized")
	}
	progress, err := a.videos.PollVideo(ctx, operation)
	if err != nil {
		logger.Error("PollVideo activity failed", "operation", operation, "error", err)
		return nil, err
	}
	logger.Debug("PollVideo activity completed", "operation", operation, "done", progress.Done)
	return progress, nil
}
