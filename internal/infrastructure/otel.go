package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	// ServiceName identifies this service in exported metrics.
	ServiceName = "finlens"
	meterName   = "finlens"
)

// Metrics holds the pipeline instruments, exported through Prometheus.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	handler  http.Handler

	filesProcessed metric.Int64Counter
	formatErrors   metric.Int64Counter
	schemaErrors   metric.Int64Counter
	duration       metric.Float64Histogram
}

// InitializeMetrics sets up the OpenTelemetry meter provider with the
// Prometheus exporter and creates the pipeline instruments.
func InitializeMetrics(logger *slog.Logger) (*Metrics, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	meter := provider.Meter(meterName)

	m := &Metrics{provider: provider, handler: promhttp.Handler()}

	if m.filesProcessed, err = meter.Int64Counter("finlens_files_processed_total",
		metric.WithDescription("Statement files successfully processed")); err != nil {
		return nil, err
	}
	if m.formatErrors, err = meter.Int64Counter("finlens_format_errors_total",
		metric.WithDescription("Files rejected with a format error")); err != nil {
		return nil, err
	}
	if m.schemaErrors, err = meter.Int64Counter("finlens_schema_errors_total",
		metric.WithDescription("Files rejected with a schema error")); err != nil {
		return nil, err
	}
	if m.duration, err = meter.Float64Histogram("finlens_pipeline_duration_seconds",
		metric.WithDescription("End-to-end pipeline duration")); err != nil {
		return nil, err
	}

	logger.Info("metrics initialized", slog.String("exporter", "prometheus"))
	return m, nil
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// ObserveProcessed records one successful pipeline run.
func (m *Metrics) ObserveProcessed(ctx context.Context, company string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.filesProcessed.Add(ctx, 1, metric.WithAttributes(attribute.String("company", company)))
	m.duration.Record(ctx, elapsed.Seconds())
}

// ObserveFormatError records one format rejection.
func (m *Metrics) ObserveFormatError(ctx context.Context) {
	if m == nil {
		return
	}
	m.formatErrors.Add(ctx, 1)
}

// ObserveSchemaError records one schema rejection.
func (m *Metrics) ObserveSchemaError(ctx context.Context) {
	if m == nil {
		return
	}
	m.schemaErrors.Add(ctx, 1)
}

// Shutdown flushes the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
