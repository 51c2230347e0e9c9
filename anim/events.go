package anim

// EventKind identifies a type of playback event.
type EventKind int

const (
	// EventStarted fires once when a clip is set as current.
	EventStarted EventKind = iota
	// EventFrameStarted fires once per displayed frame, including frame 0
	// of a newly set clip.
	EventFrameStarted
	// EventFinished fires once when a non-looping clip reaches its terminal
	// advance. Never fires while looping.
	EventFinished
	// EventOneShotFinished fires once per one-shot clip, after EventFinished,
	// immediately before the automatic return to the loop clip.
	EventOneShotFinished
)

// Event describes a playback event.
type Event struct {
	Kind  EventKind
	Clip  string
	Frame int
}

// Listener handles playback events.
type Listener func(Event)

// Subscription is a handle returned by Subscribe, used to unsubscribe.
type Subscription struct {
	kind EventKind
	id   int
}

type subscriber struct {
	id int
	fn Listener
}

// Emitter dispatches playback events to listeners synchronously, in
// registration order, on the goroutine that drives the tick.
type Emitter struct {
	nextID    int
	listeners map[EventKind][]subscriber
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[EventKind][]subscriber)}
}

// Subscribe registers a listener for one event kind.
func (e *Emitter) Subscribe(kind EventKind, fn Listener) Subscription {
	if e == nil || fn == nil {
		return Subscription{}
	}
	if e.listeners == nil {
		e.listeners = make(map[EventKind][]subscriber)
	}
	e.nextID++
	e.listeners[kind] = append(e.listeners[kind], subscriber{id: e.nextID, fn: fn})
	return Subscription{kind: kind, id: e.nextID}
}

// Unsubscribe removes a previously registered listener. Unknown or stale
// subscriptions are ignored.
func (e *Emitter) Unsubscribe(s Subscription) {
	if e == nil || s.id == 0 {
		return
	}
	subs := e.listeners[s.kind]
	for i, sub := range subs {
		if sub.id == s.id {
			e.listeners[s.kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit sends an event to every listener registered for its kind.
func (e *Emitter) Emit(ev Event) {
	if e == nil {
		return
	}
	for _, sub := range e.listeners[ev.Kind] {
		if sub.fn != nil {
			sub.fn(ev)
		}
	}
}
