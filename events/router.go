package events

// Handler reacts to routed events on the game loop
// SparkSystem and AudioSystem are the in-game implementations
type Handler[T any] interface {
	// HandleEvent is called once per matching event during DispatchAll
	HandleEvent(ctx T, event GameEvent)

	// EventTypes lists the types the handler subscribes to; read once at Register
	EventTypes() []EventType
}

// Router drains an EventQueue and fans each event out to its subscribers
// Dispatch is single-threaded and happens once per frame, before systems run;
// subscribers of one type are called in registration order
type Router[T any] struct {
	queue       *EventQueue
	subscribers map[EventType][]Handler[T]
}

// NewRouter creates a router draining queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		queue:       queue,
		subscribers: make(map[EventType][]Handler[T]),
	}
}

// Register subscribes handler to every type it declares
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.subscribers[t] = append(r.subscribers[t], handler)
	}
}

// DispatchAll drains the queue in FIFO order and returns the number of events drained,
// including those nobody subscribed to
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		for _, h := range r.subscribers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(pending)
}

// HandlerCount returns the number of subscribers for t
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.subscribers[t])
}

// HasHandlers reports whether anything subscribed to t
func (r *Router[T]) HasHandlers(t EventType) bool {
	return r.HandlerCount(t) > 0
}
