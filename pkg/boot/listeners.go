package boot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avila-r/failure"
)

// RunListeners fans every bootstrap phase out to a fixed group of listeners.
// Listeners are notified sequentially, in registration order, for every
// phase including Failed. The group is immutable after construction.
type RunListeners struct {
	log       *slog.Logger
	listeners []RunListener
}

func NewRunListeners(log *slog.Logger, listeners ...RunListener) *RunListeners {
	return &RunListeners{
		log:       log,
		listeners: append([]RunListener{}, listeners...),
	}
}

// Starting and the other phase methods below stop at the first listener
// error and return it unchanged. Listeners after the failing one are not
// notified.
func (group *RunListeners) Starting() error {
	for _, listener := range group.listeners {
		if err := listener.Starting(); err != nil {
			return err
		}
	}
	return nil
}

func (group *RunListeners) EnvironmentPrepared(env *Environment) error {
	for _, listener := range group.listeners {
		if err := listener.EnvironmentPrepared(env); err != nil {
			return err
		}
	}
	return nil
}

func (group *RunListeners) ContextPrepared(ctx *Context) error {
	for _, listener := range group.listeners {
		if err := listener.ContextPrepared(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (group *RunListeners) ContextLoaded(ctx *Context) error {
	for _, listener := range group.listeners {
		if err := listener.ContextLoaded(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (group *RunListeners) Started(ctx *Context) error {
	for _, listener := range group.listeners {
		if err := listener.Started(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (group *RunListeners) Running(ctx *Context) error {
	for _, listener := range group.listeners {
		if err := listener.Running(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Failed notifies every listener of a failed bootstrap, even when earlier
// listeners error. A listener error is logged instead of propagated, unless
// there is no primary cause to report; then it is returned immediately and
// the remaining listeners are skipped.
func (group *RunListeners) Failed(ctx *Context, cause error) error {
	for _, listener := range group.listeners {
		if err := group.callFailedListener(listener, ctx, cause); err != nil {
			return err
		}
	}
	return nil
}

func (group *RunListeners) callFailedListener(
	listener RunListener,
	ctx *Context,
	cause error,
) error {
	err := listener.Failed(ctx, cause)
	if err == nil {
		return nil
	}

	if cause == nil {
		// A listener failing with no primary cause to attach the error to
		// is a defect in the listener itself.
		return err
	}

	if group.log.Enabled(context.Background(), slog.LevelDebug) {
		group.log.Error(
			"error handling failed",
			slog.String("error", fmt.Sprintf("%+v", failure.Enhanced(err))),
		)
	} else {
		message := err.Error()
		if message == "" {
			message = "no error message"
		}
		group.log.Warn("error handling failed (" + message + ")")
	}
	return nil
}
