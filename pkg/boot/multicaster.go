package boot

// EventMulticaster delivers events to listeners sequentially, in
// registration order. The first listener error stops delivery.
type EventMulticaster struct {
	listeners Registry[EventListener]
}

func NewEventMulticaster() *EventMulticaster {
	return new(EventMulticaster)
}

func (multicaster *EventMulticaster) OnEvent(listener EventListener) {
	multicaster.listeners.Register(listener)
}

func (multicaster *EventMulticaster) Emit(event Event) error {
	var err error
	for _, listener := range multicaster.listeners.Value() {
		err = listener(event)
		if err != nil {
			return err
		}
	}
	return nil
}

// EventPublishingRunListener forwards every bootstrap phase to an event
// multicaster as a typed event.
type EventPublishingRunListener struct {
	Application string
	Multicaster *EventMulticaster
}

var _ RunListener = EventPublishingRunListener{}

func (listener EventPublishingRunListener) Starting() error {
	return listener.Multicaster.Emit(StartingEvent{
		Application: listener.Application,
	})
}

func (listener EventPublishingRunListener) EnvironmentPrepared(env *Environment) error {
	return listener.Multicaster.Emit(EnvironmentPreparedEvent{
		Application: listener.Application,
		Environment: env,
	})
}

func (listener EventPublishingRunListener) ContextPrepared(*Context) error {
	return listener.Multicaster.Emit(ContextPreparedEvent{
		Application: listener.Application,
	})
}

func (listener EventPublishingRunListener) ContextLoaded(*Context) error {
	return listener.Multicaster.Emit(ContextLoadedEvent{
		Application: listener.Application,
	})
}

func (listener EventPublishingRunListener) Started(*Context) error {
	return listener.Multicaster.Emit(StartedEvent{
		Application: listener.Application,
	})
}

func (listener EventPublishingRunListener) Running(*Context) error {
	return listener.Multicaster.Emit(RunningEvent{
		Application: listener.Application,
	})
}

func (listener EventPublishingRunListener) Failed(_ *Context, cause error) error {
	return listener.Multicaster.Emit(FailedEvent{
		Application: listener.Application,
		Cause:       cause,
	})
}
