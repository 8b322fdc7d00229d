package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	encyclopediaserver "github.com/Apurer/pet-encyclopedia/go"
	"github.com/Apurer/pet-encyclopedia/internal/clients/gemini"
	petapi "github.com/Apurer/pet-encyclopedia/internal/clients/http/petapi"
	platformobservability "github.com/Apurer/pet-encyclopedia/internal/platform/observability"

	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/adapters/curated"
	breedsgenerative "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/adapters/generative"
	breedsobs "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/adapters/observability"
	breedsapp "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/application"
	breedsdomain "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	breedsports "github.com/Apurer/pet-encyclopedia/internal/domains/breeds/ports"

	gallerygenerative "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/generative"
	gallerymemory "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/memory"
	galleryobs "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/observability"
	galleryworkflows "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/workflows"
	galleryapp "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application"
	galleryports "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/ports"
)

// ServiceName identifies the API process in traces and logs.
const ServiceName = "pet-encyclopedia-api"

// Run boots the encyclopedia HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, cfg.ObservabilityOptions(ServiceName))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	gem := NewGeminiClient(cfg)
	if !gem.Enabled() {
		logger.Warn("GEMINI_API_KEY not set, generative features will report configuration errors")
	}

	breedService, err := buildBreedService(cfg, gem, instruments)
	if err != nil {
		return err
	}

	media := gallerygenerative.NewMedia(gem)
	var videos galleryports.VideoOrchestrator
	if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, polling video jobs inline", slog.String("error", err.Error()))
		inline := galleryworkflows.NewInlineVideoWorkflows(media, gallerymemory.NewJobStore(), cfg.VideoPollInterval, cfg.VideoMaxWait)
		defer inline.Close()
		videos = inline
	} else {
		defer temporalClient.Close()
		videos = galleryworkflows.NewTemporalVideoWorkflows(temporalClient, cfg.VideoPollInterval, cfg.VideoMaxWait)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}
	galleryService := galleryobs.New(
		galleryapp.NewService(gallerymemory.NewSeededRepository(), media, videos),
		galleryobs.WithLogger(logger),
		galleryobs.WithTracer(instruments.Tracer("internal.gallery.application")),
		galleryobs.WithMeter(instruments.Meter("internal.gallery.application")),
	)

	handler := NewHandler(cfg, encyclopediaserver.ApiHandleFunctions{
		BreedAPI:   encyclopediaserver.NewBreedAPI(breedService),
		GalleryAPI: encyclopediaserver.NewGalleryAPI(galleryService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Pet encyclopedia API listening", slog.String("addr", srv.Addr), slog.String("breed_source", string(cfg.BreedListSource)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("Pet encyclopedia API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down Pet encyclopedia API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewHandler assembles the gin engine with tracing middleware and wraps it with CORS.
func NewHandler(cfg Config, handlers encyclopediaserver.ApiHandleFunctions) http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery(), otelgin.Middleware(ServiceName))
	encyclopediaserver.NewRouterWithGinEngine(engine, handlers)

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Traceparent"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         300,
	}).Handler(engine)
}

// NewGeminiClient builds the shared generative client from cfg.
func NewGeminiClient(cfg Config) *gemini.Client {
	return gemini.New(gemini.Config{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		VideoModel: cfg.GeminiVideoModel,
	})
}

func buildBreedService(cfg Config, gem *gemini.Client, instruments *platformobservability.Instruments) (breedsports.Service, error) {
	var catalog *curated.Provider
	if cfg.PetAPIBaseURL == "" {
		instruments.Logger.Warn("PET_API_BASE_URL not set, curated breed pages will report configuration errors")
		catalog = curated.NewProvider(nil)
	} else {
		api, err := petapi.NewPetAPIClient(cfg.PetAPIBaseURL, petapi.WithHTTPClient(&http.Client{Timeout: cfg.PetAPITimeout}))
		if err != nil {
			return nil, fmt.Errorf("failed to build pet API client: %w", err)
		}
		catalog = curated.NewProvider(api)
	}

	generated, err := breedsgenerative.NewProvider(gem)
	if err != nil {
		return nil, fmt.Errorf("failed to load generative schemas: %w", err)
	}

	var provider breedsports.BreedProvider = generated
	if cfg.BreedListSource == breedsdomain.SourceCurated {
		provider = catalog
	}

	return breedsobs.New(
		breedsapp.NewService(provider, catalog, generated, gem),
		breedsobs.WithLogger(instruments.Logger),
		breedsobs.WithTracer(instruments.Tracer("internal.breeds.application")),
		breedsobs.WithMeter(instruments.Meter("internal.breeds.application")),
	), nil
}

// ConnectTemporalClient dials Temporal with tracing and structured logging, unless disabled.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
