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

	breedtypes "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/ports"
)

const tracerName = "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/adapters/observability/service"

// Service decorates the breeds application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// ListBreeds renders a listing page with instrumentation.
func (s *Service) ListBreeds(ctx context.Context, input breedtypes.ListBreedsInput) (*breedtypes.BreedListing, error) {
	filter := input.Filter
	ctx, span := s.startSpan(ctx, "Service.ListBreeds", filterAttributes(filter)...)
	defer span.End()

	s.logInfo(ctx, "listing breeds", slog.String("query", filter.Query), slog.String("type", string(filter.Type)), slog.Int("page", filter.Page))
	result, err := s.inner.ListBreeds(ctx, input)
	if err != nil {
		s.metrics.recordFetchFailure(ctx, "list", err)
		return nil, s.handleError(ctx, span, err, "failed to list breeds", slog.String("failure", domain.FailureKind(err)))
	}
	span.SetAttributes(
		attribute.String("breeds.source", string(result.Source)),
		attribute.Int("breeds.result.count", len(result.Records)),
		attribute.Int("breeds.total_pages", result.PageInfo.TotalPages),
	)
	s.metrics.recordListing(ctx, result.Source, filter.HasQuery())
	s.logInfo(ctx, "listed breeds",
		slog.String("source", string(result.Source)),
		slog.Int("count", len(result.Records)),
		slog.Int("total", result.PageInfo.Total),
	)
	return result, nil
}

// Navigate applies a pager transition.
func (s *Service) Navigate(ctx context.Context, input breedtypes.NavigateInput) (*breedtypes.NavigateResult, error) {
	ctx, span := s.startSpan(ctx, "Service.Navigate", attribute.String("breeds.navigate.action", string(input.Action)))
	defer span.End()

	result, err := s.inner.Navigate(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to navigate", slog.String("action", string(input.Action)))
	}
	span.SetAttributes(attribute.Bool("breeds.navigate.changed", result.Changed))
	return result, nil
}

// GetCuratedDetail loads a curated pet detail page.
func (s *Service) GetCuratedDetail(ctx context.Context, input breedtypes.CuratedDetailInput) (*breedtypes.CuratedBreedDetail, error) {
	ctx, span := s.startSpan(ctx, "Service.GetCuratedDetail", attribute.String("breed.slug", input.Slug))
	defer span.End()

	s.logInfo(ctx, "loading curated breed", slog.String("slug", input.Slug))
	result, err := s.inner.GetCuratedDetail(ctx, input)
	if err != nil {
		s.metrics.recordFetchFailure(ctx, "curated_detail", err)
		return nil, s.handleError(ctx, span, err, "failed to load curated breed", slog.String("slug", input.Slug))
	}
	span.SetAttributes(attribute.Bool("breed.image.ai_generated", result.AIGenerated))
	s.logInfo(ctx, "curated breed loaded", slog.String("slug", input.Slug), slog.Bool("ai_image", result.AIGenerated))
	return result, nil
}

// GetGeneratedDetail produces a generated breed detail page.
func (s *Service) GetGeneratedDetail(ctx context.Context, input breedtypes.GeneratedDetailInput) (*breedtypes.GeneratedBreedDetail, error) {
	ctx, span := s.startSpan(ctx, "Service.GetGeneratedDetail",
		attribute.String("breed.slug", input.Slug),
	)
	defer span.End()

	s.logInfo(ctx, "generating breed detail", slog.String("slug", input.Slug))
	result, err := s.inner.GetGeneratedDetail(ctx, input)
	if err != nil {
		s.metrics.recordFetchFailure(ctx, "generated_detail", err)
		return nil, s.handleError(ctx, span, err, "failed to generate breed detail", slog.String("slug", input.Slug))
	}
	span.SetAttributes(attribute.Bool("breed.image.ai_generated", result.AIGenerated))
	return result, nil
}

func filterAttributes(filter domain.FilterState) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool("breeds.filter.has_query", filter.HasQuery()),
		attribute.String("breeds.filter.type", string(filter.Type)),
		attribute.Int("breeds.filter.page", filter.Page),
		attribute.Int("breeds.filter.per_page", filter.PerPage),
	}
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	listings      metric.Int64Counter
	fetchFailures metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	listings, _ := m.Int64Counter("breeds.service.listings", metric.WithDescription("Number of breed listing pages rendered"))
	fetchFailures, _ := m.Int64Counter("breeds.service.fetch_failures", metric.WithDescription("Number of failed upstream breed fetches"))
	return serviceMetrics{listings: listings, fetchFailures: fetchFailures}
}

func (m serviceMetrics) recordListing(ctx context.Context, source domain.Source, search bool) {
	addCounter(ctx, m.listings, 1,
		attribute.String("breeds.source", string(source)),
		attribute.Bool("breeds.search", search),
	)
}

func (m serviceMetrics) recordFetchFailure(ctx context.Context, op string, err error) {
	addCounter(ctx, m.fetchFailures, 1,
		attribute.String("breeds.operation", op),
		attribute.String("breeds.failure", domain.FailureKind(err)),
	)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
