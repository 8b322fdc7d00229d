package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

const tracerName = "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/observability/service"

// Service decorates the gallery application port with tracing, logging, and metrics.
type Service struct {
	inner       ports.Service
	tracer      trace.Tracer
	logger      *slog.Logger
	generations metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// WithMeter registers the gallery.service.generations counter on m.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m == nil {
			return
		}
		s.generations, _ = m.Int64Counter("gallery.service.generations",
			metric.WithDescription("Number of generation requests by media kind and outcome"))
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{inner: inner}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Service) ListItems(ctx context.Context) ([]*gallerytypes.ItemProjection, error) {
	ctx, span := s.tracer.Start(ctx, "Service.ListItems")
	defer span.End()

	items, err := s.inner.ListItems(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list gallery")
	}
	span.SetAttributes(attribute.Int("gallery.items.count", len(items)))
	return items, nil
}

func (s *Service) Capabilities(ctx context.Context) gallerytypes.Capabilities {
	return s.inner.Capabilities(ctx)
}

func (s *Service) GenerateImage(ctx context.Context, input gallerytypes.GenerateInput) (*gallerytypes.ItemProjection, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GenerateImage", trace.WithAttributes(attribute.Int("gallery.prompt.length", len(input.Prompt))))
	defer span.End()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "generating gallery image")
	item, err := s.inner.GenerateImage(ctx, input)
	s.recordGeneration(ctx, domain.MediaImage, err)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to generate gallery image")
	}
	span.SetAttributes(attribute.String("gallery.item.id", item.Entity.ID))
	s.logger.LogAttrs(ctx, slog.LevelInfo, "gallery image generated", slog.String("item_id", item.Entity.ID))
	return item, nil
}

func (s *Service) StartVideo(ctx context.Context, input gallerytypes.GenerateInput) (*gallerytypes.VideoJobView, error) {
	ctx, span := s.tracer.Start(ctx, "Service.StartVideo", trace.WithAttributes(attribute.Int("gallery.prompt.length", len(input.Prompt))))
	defer span.End()

	view, err := s.inner.StartVideo(ctx, input)
	s.recordGeneration(ctx, domain.MediaVideo, err)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to start video job")
	}
	span.SetAttributes(attribute.String("gallery.job.id", view.Job.ID))
	s.logger.LogAttrs(ctx, slog.LevelInfo, "video job started", slog.String("job_id", view.Job.ID))
	return view, nil
}

func (s *Service) GetVideoJob(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoJobView, error) {
	ctx, span := s.tracer.Start(ctx, "Service.GetVideoJob", trace.WithAttributes(attribute.String("gallery.job.id", input.ID)))
	defer span.End()

	view, err := s.inner.GetVideoJob(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to read video job", slog.String("job_id", input.ID))
	}
	span.SetAttributes(attribute.String("gallery.job.status", string(view.Job.Status)))
	return view, nil
}

func (s *Service) CancelVideoJob(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoJobView, error) {
	ctx, span := s.tracer.Start(ctx, "Service.CancelVideoJob", trace.WithAttributes(attribute.String("gallery.job.id", input.ID)))
	defer span.End()

	view, err := s.inner.CancelVideoJob(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to cancel video job", slog.String("job_id", input.ID))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "video job cancelled", slog.String("job_id", input.ID))
	return view, nil
}

func (s *Service) OpenVideo(ctx context.Context, input gallerytypes.VideoJobInput) (*gallerytypes.VideoContent, error) {
	ctx, span := s.tracer.Start(ctx, "Service.OpenVideo", trace.WithAttributes(attribute.String("gallery.job.id", input.ID)))
	defer span.End()

	content, err := s.inner.OpenVideo(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to open video", slog.String("job_id", input.ID))
	}
	return content, nil
}

func (s *Service) recordGeneration(ctx context.Context, kind domain.MediaKind, err error) {
	if s.generations == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	s.generations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("gallery.kind", string(kind)),
		attribute.String("gallery.outcome", outcome),
	))
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

var _ ports.Service = (*Service)(nil)
