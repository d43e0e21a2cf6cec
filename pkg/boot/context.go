package boot

import "go.uber.org/dig"

// Context is the assembled state of one bootstrap attempt: the dependency
// injection container features provide into, plus the environment it was
// built from. A Context is created by App.Run and discarded with the
// attempt.
type Context struct {
	container *dig.Container
	env       *Environment
	lifecycle *Lifecycle

	loaded  bool
	started bool
}

func newContext(env *Environment) *Context {
	ctx := &Context{
		container: dig.New(),
		env:       env,
		lifecycle: NewLifecycle(),
	}
	ctx.container.Provide(func() *Environment { return env })
	ctx.container.Provide(func() *Lifecycle { return ctx.lifecycle })
	return ctx
}

func (ctx *Context) Environment() *Environment {
	return ctx.env
}

func (ctx *Context) Lifecycle() *Lifecycle {
	return ctx.lifecycle
}

// Provide registers a constructor in the container.
func (ctx *Context) Provide(constructor any) error {
	return ctx.container.Provide(constructor)
}

// Invoke resolves the function's parameters from the container and calls
// it.
func (ctx *Context) Invoke(function any) error {
	return ctx.container.Invoke(function)
}

// Loaded reports whether every feature has been applied to the context.
func (ctx *Context) Loaded() bool {
	return ctx.loaded
}

// Started reports whether invokers and lifecycle start hooks have run.
func (ctx *Context) Started() bool {
	return ctx.started
}

// Shutdown runs every registered shutdown hook, joining their errors.
func (ctx *Context) Shutdown() error {
	return ctx.lifecycle.RunShutdown()
}
