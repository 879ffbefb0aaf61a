package registry

type EventType string

const (
	EventPlayerRegistered EventType = "player_registered"
	EventPlayerEscaped    EventType = "player_escaped"
)

// Event describes a registry mutation. Observers run after the registry lock
// is released, on the goroutine that made the change.
type Event struct {
	Type   EventType
	Record PlayerRecord
}

// Observe registers fn to be called after every registration and escape.
func (r *Registry) Observe(fn func(Event)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	observers := make([]func(Event), 0, len(r.observers)+1)
	observers = append(observers, r.observers...)
	r.observers = append(observers, fn)
}

func notify(observers []func(Event), event Event) {
	for _, fn := range observers {
		fn(event)
	}
}
