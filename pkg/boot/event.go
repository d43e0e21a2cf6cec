package boot

type Event interface {
	// Description of the event
	Event() string

	// Details for logging
	Details() map[string]string
}

type EventListener func(event Event) error

type StartingEvent struct {
	Application string
}

func (event StartingEvent) Event() string {
	return "ApplicationStarting"
}

func (event StartingEvent) Details() map[string]string {
	return map[string]string{
		"application": event.Application,
	}
}

type EnvironmentPreparedEvent struct {
	Application string
	Environment *Environment
}

func (event EnvironmentPreparedEvent) Event() string {
	return "ApplicationEnvironmentPrepared"
}

func (event EnvironmentPreparedEvent) Details() map[string]string {
	return map[string]string{
		"application": event.Application,
		"environment": string(event.Environment.Name),
	}
}

type ContextPreparedEvent struct {
	Application string
}

func (event ContextPreparedEvent) Event() string {
	return "ApplicationContextPrepared"
}

func (event ContextPreparedEvent) Details() map[string]string {
	return map[string]string{
		"application": event.Application,
	}
}

type ContextLoadedEvent struct {
	Application string
}

func (event ContextLoadedEvent) Event() string {
	return "ApplicationContextLoaded"
}

func (event ContextLoadedEvent) Details() map[string]string {
	return map[string]string{
		"application": event.Application,
	}
}

type StartedEvent struct {
	Application string
}

func (event StartedEvent) Event() string {
	return "ApplicationStarted"
}

func (event StartedEvent) Details() map[string]string {
	return map[string]string{
		"application": event.Application,
	}
}

type RunningEvent struct {
	Application string
}

func (event RunningEvent) Event() string {
	return "ApplicationRunning"
}

func (event RunningEvent) Details() map[string]string {
	return map[string]string{
		"application": event.Application,
	}
}

type FailedEvent struct {
	Application string
	Cause       error
}

func (event FailedEvent) Event() string {
	return "ApplicationFailed"
}

func (event FailedEvent) Details() map[string]string {
	details := map[string]string{
		"application": event.Application,
	}
	if event.Cause != nil {
		details["error"] = event.Cause.Error()
	}
	return details
}
