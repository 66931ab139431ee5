// internal/event/event.go

// Package event is the synchronous bus the simulation systems report
// through.
package event

type EventType string

// Event pairs a type with its payload. Data holds one of the *Data
// structs declared in types.go, matching Type.
type Event struct {
	Type EventType
	Data interface{}
}

type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc lets a closure subscribe. It can never be unsubscribed:
// func values are not comparable.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher calls listeners inline, in the order they subscribed.
// It is not safe for concurrent use; the game loop owns it.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: map[EventType][]Listener{}}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe drops the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	ls := d.listeners[eventType]
	for i := range ls {
		if ls[i] != listener {
			continue
		}
		d.listeners[eventType] = append(ls[:i], ls[i+1:]...)
		return
	}
}

// Dispatch is a no-op on a nil *Dispatcher, so systems built without a
// bus in tests still run.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[event.Type] {
		l.OnEvent(event)
	}
}
