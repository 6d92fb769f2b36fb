package ecs

// EventType names a kind of event
type EventType string

// Event is anything the world can broadcast
type Event interface {
	Type() EventType
}

// EventHandler receives an emitted event
type EventHandler func(Event)

// EventManager dispatches events synchronously to the handlers subscribed to
// their type. Subscriptions belong to the world and survive entity deletion.
type EventManager struct {
	handlers map[EventType][]EventHandler
	emitted  map[EventType]int
}

// NewEventManager creates an event manager with no subscriptions
func NewEventManager() *EventManager {
	return &EventManager{
		handlers: make(map[EventType][]EventHandler),
		emitted:  make(map[EventType]int),
	}
}

// Subscribe registers a handler for one event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.handlers[eventType] = append(em.handlers[eventType], handler)
}

// Emit calls the handlers of the event's type in subscription order. A handler
// subscribed while the event is being dispatched only sees later events.
func (em *EventManager) Emit(event Event) {
	em.emitted[event.Type()]++
	for _, handler := range em.handlers[event.Type()] {
		handler(event)
	}
}

// Emitted returns how many events of a type have been emitted so far
func (em *EventManager) Emitted(eventType EventType) int {
	return em.emitted[eventType]
}

// Listen subscribes a handler that only receives events of the concrete type E
func Listen[E Event](em *EventManager, eventType EventType, handler func(E)) {
	em.Subscribe(eventType, func(event Event) {
		if typed, ok := event.(E); ok {
			handler(typed)
		}
	})
}
