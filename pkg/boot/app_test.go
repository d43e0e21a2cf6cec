package boot_test

import (
	"errors"
	"log/slog"
	"testing"

	"gitlab.com/pala-software/ignition/pkg/boot"
)

type testService struct {
	environment boot.EnvironmentName
}

type testFeature struct {
	invoked bool
	started bool
	stopped bool
}

func (feature *testFeature) Provider() any {
	return func(env *boot.Environment) *testService {
		return &testService{environment: env.Name}
	}
}

func (feature *testFeature) Invoker() any {
	return func(
		lifecycle *boot.Lifecycle,
		service *testService,
	) error {
		feature.invoked = true

		lifecycle.Start.Register(func() error {
			feature.started = true
			return nil
		})
		lifecycle.Shutdown.Register(func() error {
			feature.stopped = true
			return nil
		})

		return nil
	}
}

func newTestApp(calls *[]phaseCall) *boot.App {
	app := boot.NewApp("test")
	log, _ := newCaptureLogger(slog.LevelInfo)
	app.Log = log
	app.Listeners.Register(recordingListener{id: 1, calls: calls})
	return app
}

func TestAppRun(t *testing.T) {
	t.Setenv("IGNITION_ENVIRONMENT", "development")

	calls := &[]phaseCall{}
	app := newTestApp(calls)

	feature := &testFeature{}
	app.Features.Register(feature)

	var ranAfter string
	app.Runners.Register(func(ctx *boot.Context) error {
		ranAfter = (*calls)[len(*calls)-1].phase
		return nil
	})

	ctx, err := app.Run()
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"starting",
		"environmentPrepared",
		"contextPrepared",
		"contextLoaded",
		"started",
		"running",
	}
	if len(*calls) != len(expected) {
		t.Fatalf("expected %d phases, got %v", len(expected), *calls)
	}
	for index, call := range *calls {
		if call.phase != expected[index] {
			t.Fatalf(
				"expected phase %s, got %s",
				expected[index], call.phase,
			)
		}
	}

	if !feature.invoked || !feature.started {
		t.Fatal("expected feature to be invoked and started")
	}
	if ranAfter != "started" {
		t.Fatalf("expected runner to execute after started, got %s", ranAfter)
	}
	if !ctx.Loaded() || !ctx.Started() {
		t.Fatal("expected context to be loaded and started")
	}
	if ctx.Environment().Name != boot.Development {
		t.Fatalf("unexpected environment %s", ctx.Environment().Name)
	}

	err = ctx.Shutdown()
	if err != nil {
		t.Fatal(err)
	}
	if !feature.stopped {
		t.Fatal("expected shutdown hook to run")
	}
}

func TestAppRunFailsOnInvalidEnvironment(t *testing.T) {
	t.Setenv("IGNITION_ENVIRONMENT", "staging")

	calls := &[]phaseCall{}
	app := newTestApp(calls)

	_, err := app.Run()
	if err == nil {
		t.Fatal("expected error for invalid environment")
	}

	phases := []string{"starting", "failed"}
	if len(*calls) != len(phases) {
		t.Fatalf("expected %v, got %v", phases, *calls)
	}
	for index, call := range *calls {
		if call.phase != phases[index] {
			t.Fatalf("expected %v, got %v", phases, *calls)
		}
	}
}

func TestAppRunFailsOnRunnerError(t *testing.T) {
	t.Setenv("IGNITION_ENVIRONMENT", "development")

	calls := &[]phaseCall{}
	app := newTestApp(calls)

	boom := errors.New("boom")
	app.Runners.Register(func(*boot.Context) error {
		return boom
	})

	_, err := app.Run()
	if err == nil {
		t.Fatal("expected runner error to surface")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped runner error, got %v", err)
	}

	last := (*calls)[len(*calls)-1]
	if last.phase != "failed" {
		t.Fatalf("expected failed to be announced, got %v", *calls)
	}
}
