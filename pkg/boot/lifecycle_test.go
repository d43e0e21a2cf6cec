package boot_test

import (
	"errors"
	"testing"

	"gitlab.com/pala-software/ignition/pkg/boot"
)

func TestRunStartStopsAtFirstError(t *testing.T) {
	lifecycle := boot.NewLifecycle()
	boom := errors.New("boom")

	var started []int
	lifecycle.Start.Register(func() error {
		started = append(started, 1)
		return nil
	})
	lifecycle.Start.Register(func() error {
		started = append(started, 2)
		return boom
	})
	lifecycle.Start.Register(func() error {
		started = append(started, 3)
		return nil
	})

	err := lifecycle.RunStart()
	if err != boom {
		t.Fatalf("expected hook error, got %v", err)
	}
	if len(started) != 2 {
		t.Fatalf("expected start to stop at failing hook, got %v", started)
	}
}

func TestRunShutdownRunsEveryHook(t *testing.T) {
	lifecycle := boot.NewLifecycle()
	first := errors.New("first")
	second := errors.New("second")

	var stopped []int
	lifecycle.Shutdown.Register(func() error {
		stopped = append(stopped, 1)
		return first
	})
	lifecycle.Shutdown.Register(func() error {
		stopped = append(stopped, 2)
		return second
	})

	err := lifecycle.RunShutdown()
	if len(stopped) != 2 {
		t.Fatalf("expected every hook to run, got %v", stopped)
	}
	if !errors.Is(err, first) || !errors.Is(err, second) {
		t.Fatalf("expected joined errors, got %v", err)
	}
}
