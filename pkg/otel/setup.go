package otel

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// setup bootstraps the OpenTelemetry pipelines that are enabled for this
// feature. The returned shutdown function flushes and stops every pipeline
// that was created.
func (feature OTel) setup(ctx context.Context) (func(context.Context) error, error) {
	var shutdownFuncs []func(context.Context) error

	shutdown := func(ctx context.Context) (err error) {
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if feature.TracesEnabled {
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}

		provider := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter,
				sdktrace.WithBatchTimeout(time.Second)),
		)
		shutdownFuncs = append(shutdownFuncs, provider.Shutdown)
		otel.SetTracerProvider(provider)
	}

	if feature.MetricsEnabled {
		exporter, err := otlpmetrichttp.New(ctx)
		if err != nil {
			return nil, err
		}

		provider := sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
				sdkmetric.WithInterval(3*time.Second))),
		)
		shutdownFuncs = append(shutdownFuncs, provider.Shutdown)
		otel.SetMeterProvider(provider)
	}

	if feature.LogsEnabled {
		exporter, err := otlploghttp.New(ctx)
		if err != nil {
			return nil, err
		}

		provider := sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		)
		shutdownFuncs = append(shutdownFuncs, provider.Shutdown)
		global.SetLoggerProvider(provider)
	}

	return shutdown, nil
}
