package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Output: &buf, LogLevel: "warn"})

	logger.Info("hidden")
	logger.Warn("shown", slog.String("breed", "corgi"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "corgi", record["breed"])
	assert.Contains(t, record, slog.SourceKey)
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Output: &buf, LogFormat: "text", LogLevel: "debug"})

	logger.Debug("polling video", slog.String("job_id", "job-1"))

	assert.Contains(t, buf.String(), "polling video")
	assert.Contains(t, buf.String(), "job-1")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestInstrumentsFallbacks(t *testing.T) {
	var nilInstruments *Instruments
	assert.NotNil(t, nilInstruments.Tracer("x"))
	assert.NotNil(t, nilInstruments.Meter("x"))

	_, span := nilInstruments.Tracer("x").Start(context.Background(), "op")
	span.End()
}

func TestInitWithoutExporter(t *testing.T) {
	var buf bytes.Buffer
	instruments, shutdown, err := Init(context.Background(), Options{
		ServiceName:   "test-service",
		Output:        &buf,
		TraceExporter: ExporterNone,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := instruments.Meter("test").Int64Counter("test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	var rm metricdata.ResourceMetrics
	require.NoError(t, instruments.MetricReader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, "test.counter", rm.ScopeMetrics[0].Metrics[0].Name)
}

func TestInitRejectsUnknownExporter(t *testing.T) {
	_, _, err := Init(context.Background(), Options{ServiceName: "x", Output: &bytes.Buffer{}, TraceExporter: "zipkin"})
	assert.ErrorContains(t, err, "zipkin")
}
