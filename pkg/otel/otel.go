package otel

import (
	"context"
	"os"

	"gitlab.com/pala-software/ignition/pkg/boot"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var name = "gitlab.com/pala-software/ignition/pkg/otel"
var logger = otelslog.NewLogger(name)

type OTel struct {
	TracesEnabled  bool
	MetricsEnabled bool
	LogsEnabled    bool
}

// Construct OTel Feature and read configuration from environment variables.
func OTelFromEnv() *OTel {
	feature := OTel{}
	feature.TracesEnabled = os.Getenv("IGNITION_OTEL_TRACES_ENABLE") == "1"
	feature.MetricsEnabled = os.Getenv("IGNITION_OTEL_METRICS_ENABLE") == "1"
	feature.LogsEnabled = os.Getenv("IGNITION_OTEL_LOGS_ENABLE") == "1"
	return &feature
}

func (feature *OTel) Provider() any {
	return func() (self *OTel) {
		self = feature
		return
	}
}

func (feature *OTel) Invoker() any {
	return func(lifecycle *boot.Lifecycle) (err error) {
		otelShutdown, err := feature.setup(context.Background())
		if err != nil {
			return
		}

		lifecycle.Start.Register(func() error {
			logger.Info("Start")
			return nil
		})

		lifecycle.Shutdown.Register(func() error {
			logger.Info("Shutdown")
			return otelShutdown(context.Background())
		})

		return
	}
}

// LogEvents registers an event listener that writes every bootstrap event
// and its details to the package logger.
func LogEvents(multicaster *boot.EventMulticaster) {
	multicaster.OnEvent(func(event boot.Event) error {
		detailsMap := event.Details()
		detailsSlice := make([]any, len(detailsMap)*2)
		index := 0
		for key, val := range detailsMap {
			detailsSlice[index+0] = key
			detailsSlice[index+1] = val
			index += 2
		}

		logger.Info(event.Event(), detailsSlice...)
		return nil
	})
}
