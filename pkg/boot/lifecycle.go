package boot

import "errors"

type LifecycleHook func() error

// Lifecycle collects hooks for starting and stopping long-running resources
// owned by features.
type Lifecycle struct {
	Start    Registry[LifecycleHook]
	Shutdown Registry[LifecycleHook]
}

func NewLifecycle() *Lifecycle {
	return new(Lifecycle)
}

// RunStart executes start hooks in registration order, stopping at the
// first error.
func (lifecycle *Lifecycle) RunStart() error {
	for _, hook := range lifecycle.Start.Value() {
		if err := hook(); err != nil {
			return err
		}
	}
	return nil
}

// RunShutdown executes every shutdown hook regardless of earlier hook
// errors and returns them joined.
func (lifecycle *Lifecycle) RunShutdown() (err error) {
	for _, hook := range lifecycle.Shutdown.Value() {
		err = errors.Join(err, hook())
	}
	return
}
