package inspector

import "sync"

// MemoryPublisher records every event it receives, in order.
type MemoryPublisher struct {
	mu  sync.Mutex
	log []Event
}

func NewMemoryPublisher() *MemoryPublisher { return &MemoryPublisher{} }

func (m *MemoryPublisher) Publish(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = append(m.log, e)
}

// Events returns a snapshot of the recorded events.
func (m *MemoryPublisher) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.log...)
}

// Names returns the recorded event names in order.
func (m *MemoryPublisher) Names() []string {
	events := m.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.Name
	}
	return names
}
