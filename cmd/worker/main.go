package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/pet-encyclopedia/internal/app/api"
	gallerygenerative "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/generative"
	platformobservability "github.com/Apurer/pet-encyclopedia/internal/platform/observability"
	galleryactivities "github.com/Apurer/pet-encyclopedia/internal/platform/temporal/activities/gallery"
	galleryworkflows "github.com/Apurer/pet-encyclopedia/internal/platform/temporal/workflows/gallery"
)

func main() {
	_ = godotenv.Load()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.ObservabilityOptions("pet-encyclopedia-worker"))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	gem := api.NewGeminiClient(cfg)
	if !gem.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, video jobs will fail at start")
	}
	videoActivities := galleryactivities.NewActivities(gallerygenerative.NewMedia(gem))

	temporalClient, err := api.ConnectTemporalClient(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, galleryworkflows.VideoGenerationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(galleryworkflows.VideoGenerationWorkflow, workflow.RegisterOptions{Name: galleryworkflows.VideoGenerationWorkflowName})
	w.RegisterActivityWithOptions(videoActivities.StartVideo, activity.RegisterOptions{Name: galleryactivities.StartVideoActivityName})
	w.RegisterActivityWithOptions(videoActivities.PollVideo, activity.RegisterOptions{Name: galleryactivities.PollVideoActivityName})

	logger.Info("worker listening", slog.String("taskQueue", galleryworkflows.VideoGenerationTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
