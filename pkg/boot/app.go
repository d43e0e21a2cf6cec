package boot

import (
	"log/slog"

	"github.com/avila-r/failure"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

var name = "gitlab.com/pala-software/ignition/pkg/boot"
var logger = otelslog.NewLogger(name)

// Runner executes once the application has started, before the Running
// phase is announced.
type Runner func(ctx *Context) error

// App drives one application bootstrap attempt through its phases:
// starting, environment prepared, context prepared, context loaded,
// started, running. Run listeners are notified at every phase; any failure
// is announced through the failed phase before it is returned.
type App struct {
	Name   string
	Prefix string
	Log    *slog.Logger

	Listeners Registry[RunListener]
	Features  Registry[Feature]
	Runners   Registry[Runner]
}

func NewApp(name string) *App {
	return &App{
		Name:   name,
		Prefix: "IGNITION_",
		Log:    logger,
	}
}

// Run performs the bootstrap sequence and returns the started context. The
// returned context owns the lifecycle; callers stop the application with
// Context.Shutdown.
func (app *App) Run() (*Context, error) {
	listeners := NewRunListeners(app.Log, app.Listeners.Value()...)

	if err := listeners.Starting(); err != nil {
		return nil, app.fail(listeners, nil, err)
	}

	env, err := EnvironmentFromEnv(app.Prefix)
	if err != nil {
		return nil, app.fail(listeners, nil, err)
	}
	if err := listeners.EnvironmentPrepared(env); err != nil {
		return nil, app.fail(listeners, nil, err)
	}

	ctx := newContext(env)
	if err := listeners.ContextPrepared(ctx); err != nil {
		return nil, app.fail(listeners, ctx, err)
	}

	for _, feature := range app.Features.Value() {
		if err := ctx.Provide(feature.Provider()); err != nil {
			return nil, app.fail(listeners, ctx, err)
		}
	}
	ctx.loaded = true
	if err := listeners.ContextLoaded(ctx); err != nil {
		return nil, app.fail(listeners, ctx, err)
	}

	for _, feature := range app.Features.Value() {
		if err := ctx.Invoke(feature.Invoker()); err != nil {
			return nil, app.fail(listeners, ctx, err)
		}
	}
	if err := ctx.lifecycle.RunStart(); err != nil {
		return nil, app.fail(listeners, ctx, err)
	}
	ctx.started = true
	if err := listeners.Started(ctx); err != nil {
		return nil, app.fail(listeners, ctx, err)
	}

	for _, runner := range app.Runners.Value() {
		if err := runner(ctx); err != nil {
			return nil, app.fail(listeners, ctx, err)
		}
	}
	if err := listeners.Running(ctx); err != nil {
		return nil, app.fail(listeners, ctx, err)
	}

	return ctx, nil
}

// fail announces the failure to every listener before wrapping and
// returning the cause. An error escalated out of the failed phase takes
// precedence over the cause.
func (app *App) fail(listeners *RunListeners, ctx *Context, cause error) error {
	if err := listeners.Failed(ctx, cause); err != nil {
		return err
	}
	return failure.Decorate(cause, "application bootstrap failed")
}
