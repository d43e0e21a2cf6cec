package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"

	"gitlab.com/pala-software/ignition/pkg/boot"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var name = "gitlab.com/pala-software/ignition/pkg/httpserver"
var logger = otelslog.NewLogger(name)

type HTTPServer struct {
	Address        string
	AllowedOrigins string

	server *http.Server
}

// Construct HTTPServer Feature and read configuration from environment
// variables.
func HTTPServerFromEnv() *HTTPServer {
	feature := HTTPServer{}
	feature.Address = os.Getenv("IGNITION_HTTP_ADDRESS")
	if feature.Address == "" {
		feature.Address = ":8080"
	}
	feature.AllowedOrigins = os.Getenv("IGNITION_HTTP_ALLOWED_ORIGINS")
	return &feature
}

func (feature *HTTPServer) Provider() any {
	return func() (self *HTTPServer, mux *http.ServeMux) {
		self = feature
		mux = http.NewServeMux()
		return
	}
}

func (feature *HTTPServer) Invoker() any {
	return func(
		lifecycle *boot.Lifecycle,
		mux *http.ServeMux,
	) (err error) {
		err = feature.RegisterHooks(lifecycle, mux)
		if err != nil {
			return
		}

		return
	}
}

// RegisterHooks makes the server start serving on lifecycle start and stop
// gracefully on lifecycle shutdown.
func (feature *HTTPServer) RegisterHooks(
	lifecycle *boot.Lifecycle,
	mux *http.ServeMux,
) (err error) {
	lifecycle.Start.Register(func() error {
		listener, err := net.Listen("tcp", feature.Address)
		if err != nil {
			return err
		}

		handler := otelhttp.NewMiddleware("server")(corsHandler{
			AllowedOrigins: feature.AllowedOrigins,
			Next:           mux,
		})
		feature.server = &http.Server{Handler: handler}

		go func() {
			err := feature.server.Serve(listener)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server terminated", "error", err.Error())
			}
		}()

		logger.Info("server listening", "address", listener.Addr().String())
		return nil
	})

	lifecycle.Shutdown.Register(func() error {
		if feature.server == nil {
			return nil
		}
		return feature.server.Shutdown(context.Background())
	})

	return
}
