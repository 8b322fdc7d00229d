package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

// ContentPathFormat is where the transport serves a finished clip.
const ContentPathFormat = "/api/v1/gallery/videos/%s/content"

// Service orchestrates the gallery (AI lab) use cases.
type Service struct {
	repo   ports.Repository
	media  ports.MediaGenerator
	videos ports.VideoOrchestrator
	newID  func() string
}

// NewService wires the gallery service. videos may be nil when no orchestrator is available.
func NewService(repo ports.Repository, media ports.MediaGenerator, videos ports.VideoOrchestrator) *Service {
	return &Service{repo: repo, media: media, videos: videos, newID: uuid.NewString}
}

// ListItems returns the gallery newest first.
func (s *Service) ListItems(ctx context.Context) ([]*gallerytypes.ItemProjection, error) {
	return s.repo.List(ctx)
}

// Capabilities reports whether generation is offered at all.
func (s *Service) Capabilities(_ context.Context) gallerytypes.Capabilities {
	return gallerytypes.Capabilities{GenerationEnabled: s.enabled()}
}

// GenerateImage creates an image from the prompt and stores it at the top of the gallery.
func (s *Service) GenerateImage(ctx context.Context, input gallerytypes.GenerateInput) (*gallerytypes.ItemProjection, error) {
	prompt, err := domain.NormalizePrompt(input.Prompt)
	if err != nil {
		return nil, mapError(err)
	}
	if !s.enabled() {
		return nil, ErrGenerationUnavailable
	}
	dataURL, err := s.media.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return s.repo.Add(ctx, domain.NewImageItem(s.newID(), prompt, dataURL))
}

// StartVideo launches a video job and returns it without waiting.
func (s *Service) StartVideo(ctx context.Context, input gallerytypes.GenerateInput) (*gallerytypes.VideoJobView, error) {
	prompt, err := domain.NormalizePrompt(input.Prompt)
	if err != nil {
		return nil, mapError(err)
	}
	if !s.enabled() || s.videos == nil {
		return nil, ErrGenerationUnavailable
	}
	job, err := s.videos.StartVideo(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return &gallerytypes.VideoJobView{Job: *job}, nil
}

// GetVideoJob reports job status and records a finished clip in the gallery exactly once.
func (s *Service) GetVideoJob(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoJobView, error) {
	job, err := s.videoStatus(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	view := &gallerytypes.VideoJobView{Job: *job}
	if job.Status != domain.JobSucceeded {
		return view, nil
	}
	item := domain.NewVideoItem(s.newID(), *job, fmt.Sprintf(ContentPathFormat, job.ID))
	recorded, err := s.repo.RecordVideo(ctx, item)
	if err != nil {
		return nil, err
	}
	view.Item = recorded
	return view, nil
}

// CancelVideoJob stops a pending or running job.
func (s *Service) CancelVideoJob(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoJobView, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	if s.videos == nil {
		return nil, domain.ErrJobNotFound
	}
	job, err := s.videos.CancelVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	return &gallerytypes.VideoJobView{Job: *job}, nil
}

// OpenVideo streams the clip of a succeeded job.
func (s *Service) OpenVideo(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoContent, error) {
	job, err := s.videoStatus(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobSucceeded || job.VideoURI == "" {
		return nil, fmt.Errorf("%w: job is %s", domain.ErrVideoNotReady, job.Status)
	}
	if !s.enabled() {
		return nil, ErrGenerationUnavailable
	}
	body, contentType, err := s.media.OpenVideo(ctx, job.VideoURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return &gallerytypes.VideoContent{Body: body, ContentType: contentType}, nil
}

func (s *Service) videoStatus(ctx context.Context, id string) (*domain.VideoJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: job id is required", ErrInvalidInput)
	}
	if s.videos == nil {
		return nil, domain.ErrJobNotFound
	}
	return s.videos.VideoStatus(ctx, id)
}

func (s *Service) enabled() bool {
	return s.media != nil && s.media.Enabled()
}

var _ ports.Service = (*Service)(nil)
