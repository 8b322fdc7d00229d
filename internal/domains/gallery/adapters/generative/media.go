package generative

import (
	"context"
	"io"

	"github.com/Apurer/pet-encyclopedia/internal/clients/gemini"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

var (
	_ ports.MediaGenerator = (*Media)(nil)
	_ ports.VideoGenerator = (*Media)(nil)
)

// GeminiMedia is the subset of the Gemini client the gallery needs.
type GeminiMedia interface {
	Enabled() bool
	GenerateImage(ctx context.Context, subject string) (string, error)
	StartVideo(ctx context.Context, subject string) (string, error)
	PollVideo(ctx context.Context, name string) (*gemini.VideoOperation, error)
	OpenDownload(ctx context.Context, uri string) (io.ReadCloser, string, error)
}

// Media adapts the Gemini client to the gallery ports.
type Media struct {
	api GeminiMedia
}

// NewMedia wraps api.
func NewMedia(api GeminiMedia) *Media {
	return &Media{api: api}
}

func (m *Media) Enabled() bool {
	return m.api != nil && m.api.Enabled()
}

func (m *Media) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !m.Enabled() {
		return "", gemini.ErrNotConfigured
	}
	return m.api.GenerateImage(ctx, prompt)
}

func (m *Media) OpenVideo(ctx context.Context, uri string) (io.ReadCloser, string, error) {
	if !m.Enabled() {
		return nil, "", gemini.ErrNotConfigured
	}
	return m.api.OpenDownload(ctx, uri)
}

func (m *Media) StartVideo(ctx context.Context, prompt string) (string, error) {
	if !m.Enabled() {
		return "", gemini.ErrNotConfigured
	}
	return m.api.StartVideo(ctx, prompt)
}

// PollVideo maps the operation snapshot into domain progress.
func (m *Media) PollVideo(ctx context.Context, operation string) (*domain.VideoProgress, error) {
	if !m.Enabled() {
		return nil, gemini.ErrNotConfigured
	}
	op, err := m.api.PollVideo(ctx, operation)
	if err != nil {
		return nil, err
	}
	return &domain.VideoProgress{Done: op.Done, URI: op.URI, Error: op.Error}, nil
}
