package boot

// RunListener is notified at fixed points of the application bootstrap
// sequence. Implementations are opaque to the framework beyond these
// methods; notification order is documented on RunListeners.
type RunListener interface {
	// Starting is called immediately when the bootstrap sequence begins,
	// before the environment is resolved.
	Starting() error

	// EnvironmentPrepared is called once the environment is resolved but
	// before the bootstrap context exists.
	EnvironmentPrepared(env *Environment) error

	// ContextPrepared is called after the bootstrap context has been
	// created, before any feature is applied to it.
	ContextPrepared(ctx *Context) error

	// ContextLoaded is called after all features have provided into the
	// context, before invokers run.
	ContextLoaded(ctx *Context) error

	// Started is called once invokers and lifecycle start hooks have
	// completed, before runners execute.
	Started(ctx *Context) error

	// Running is called right before a successful bootstrap returns.
	Running(ctx *Context) error

	// Failed is called when the bootstrap sequence fails. ctx is nil when
	// the failure happened before the context was created.
	Failed(ctx *Context, cause error) error
}

// NopRunListener implements RunListener with no-op methods. Embed it to
// implement only the phases of interest.
type NopRunListener struct{}

func (NopRunListener) Starting() error {
	return nil
}

func (NopRunListener) EnvironmentPrepared(*Environment) error {
	return nil
}

func (NopRunListener) ContextPrepared(*Context) error {
	return nil
}

func (NopRunListener) ContextLoaded(*Context) error {
	return nil
}

func (NopRunListener) Started(*Context) error {
	return nil
}

func (NopRunListener) Running(*Context) error {
	return nil
}

func (NopRunListener) Failed(*Context, error) error {
	return nil
}
