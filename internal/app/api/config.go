package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/pet-encyclopedia/internal/domains/breeds/domain"
	"github.com/Apurer/pet-encyclopedia/internal/platform/observability"
)

// Config carries environment-driven settings for the API and worker processes.
type Config struct {
	Port        string
	Environment string
	LogFormat   string
	LogLevel    string

	BreedListSource domain.Source
	PetAPIBaseURL   string
	PetAPITimeout   time.Duration

	GeminiAPIKey     string
	GeminiBaseURL    string
	GeminiTextModel  string
	GeminiImageModel string
	GeminiVideoModel string

	VideoPollInterval time.Duration
	VideoMaxWait      time.Duration

	CORSAllowedOrigins []string

	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool

	TraceExporter string
	OTLPEndpoint  string
	OTLPInsecure  bool
}

// ObservabilityOptions derives the telemetry settings for a process named serviceName.
func (c Config) ObservabilityOptions(serviceName string) observability.Options {
	return observability.Options{
		ServiceName:   serviceName,
		Environment:   c.Environment,
		LogFormat:     c.LogFormat,
		LogLevel:      c.LogLevel,
		TraceExporter: c.TraceExporter,
		OTLPEndpoint:  c.OTLPEndpoint,
		OTLPInsecure:  c.OTLPInsecure,
	}
}

// LoadConfig reads environment variables through viper, applies defaults, and validates numbers.
// A missing Gemini key is not an error here; operations report it when they need it.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "local")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BREED_LIST_SOURCE", string(domain.SourceGenerative))
	v.SetDefault("PET_API_TIMEOUT_SECONDS", "10")
	v.SetDefault("VIDEO_POLL_INTERVAL_SECONDS", "5")
	v.SetDefault("VIDEO_MAX_WAIT_MINUTES", "10")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TEMPORAL_ADDRESS", client.DefaultHostPort)
	v.SetDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace)
	v.SetDefault("OTEL_TRACES_EXPORTER", observability.ExporterOTLP)
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", "1")
	v.AutomaticEnv()

	cfg := Config{
		Port:               trimmed(v, "PORT"),
		Environment:        trimmed(v, "ENVIRONMENT"),
		LogFormat:          trimmed(v, "LOG_FORMAT"),
		LogLevel:           trimmed(v, "LOG_LEVEL"),
		PetAPIBaseURL:      strings.TrimRight(trimmed(v, "PET_API_BASE_URL"), "/"),
		GeminiAPIKey:       trimmed(v, "GEMINI_API_KEY"),
		GeminiBaseURL:      trimmed(v, "GEMINI_BASE_URL"),
		GeminiTextModel:    trimmed(v, "GEMINI_TEXT_MODEL"),
		GeminiImageModel:   trimmed(v, "GEMINI_IMAGE_MODEL"),
		GeminiVideoModel:   trimmed(v, "GEMINI_VIDEO_MODEL"),
		CORSAllowedOrigins: splitList(trimmed(v, "CORS_ALLOWED_ORIGINS")),
		TemporalAddress:    trimmed(v, "TEMPORAL_ADDRESS"),
		TemporalNamespace:  trimmed(v, "TEMPORAL_NAMESPACE"),
		TemporalDisabled:   isTruthy(trimmed(v, "TEMPORAL_DISABLED")),
		TraceExporter:      strings.ToLower(trimmed(v, "OTEL_TRACES_EXPORTER")),
		OTLPEndpoint:       trimmed(v, "OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:       isTruthy(trimmed(v, "OTEL_EXPORTER_OTLP_INSECURE")),
	}

	switch source := domain.Source(strings.ToLower(trimmed(v, "BREED_LIST_SOURCE"))); source {
	case domain.SourceGenerative, domain.SourceCurated:
		cfg.BreedListSource = source
	default:
		return Config{}, fmt.Errorf("BREED_LIST_SOURCE must be %q or %q", domain.SourceGenerative, domain.SourceCurated)
	}

	var err error
	if cfg.PetAPITimeout, err = positiveDuration(v, "PET_API_TIMEOUT_SECONDS", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.VideoPollInterval, err = positiveDuration(v, "VIDEO_POLL_INTERVAL_SECONDS", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.VideoMaxWait, err = positiveDuration(v, "VIDEO_MAX_WAIT_MINUTES", time.Minute); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func trimmed(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

func positiveDuration(v *viper.Viper, key string, unit time.Duration) (time.Duration, error) {
	n, err := strconv.Atoi(trimmed(v, key))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return time.Duration(n) * unit, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
