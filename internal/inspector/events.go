package inspector

// Event represents a compile lifecycle event.
// Minimal and stable: name + invocation id and optional fields via key/values.
type Event struct {
	Name       string
	Invocation string
	Fields     map[string]any
}

// EventPublisher receives events from the session. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
