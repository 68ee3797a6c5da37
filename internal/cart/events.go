package cart

// Event identifies what changed in the cart. Badge counters only care about
// EventItemsCountChanged; list views redraw on EventItemsChanged; the
// validation variant lets the UI show a "menu changed" notice.
type Event string

const (
	EventItemsChanged      Event = "items_changed"
	EventItemsCountChanged Event = "items_count_changed"
	EventItemsValidated    Event = "items_validated"
)

// emitter is an observer list owned by one cart instance; there is no global
// event bus. Delivery order across subscribers is unspecified.
type emitter struct {
	nextID int
	subs   map[int]func(Event)
}

func (e *emitter) subscribe(fn func(Event)) func() {
	if e.subs == nil {
		e.subs = make(map[int]func(Event))
	}
	id := e.nextID
	e.nextID++
	e.subs[id] = fn

	return func() {
		delete(e.subs, id)
	}
}

func (e *emitter) emit(event Event) {
	for _, fn := range e.subs {
		fn(event)
	}
}
