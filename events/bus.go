package events

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bus decouples "an order mutated" from "who needs to know". Scoped to the
// process lifetime: no persistence, no replay. A subscriber that misses an
// event reconciles with a fresh REST read.
type Bus interface {
	Publish(ev Event)
	Subscribe(types ...Type) *Subscription
}

// Subscription delivers matching events on C until Close is called.
type Subscription struct {
	ID string
	C  <-chan Event

	bus *InProcessBus
	ch  chan Event
}

func (s *Subscription) Close() {
	s.bus.unsubscribe(s.ID)
}

const subscriberBuffer = 64

type subscriber struct {
	types map[Type]bool // empty means all types
	ch    chan Event
}

// InProcessBus fans events out to per-subscriber buffered channels. Publish
// never blocks: when a subscriber's buffer is full the event is dropped for
// that subscriber (best-effort broadcast).
type InProcessBus struct {
	mu   sync.Mutex
	subs map[string]*subscriber
	log  *zap.Logger
}

func NewInProcessBus(log *zap.Logger) *InProcessBus {
	if log == nil {
		log = zap.NewNop()
	}
	return &InProcessBus{
		subs: make(map[string]*subscriber),
		log:  log,
	}
}

// Publish delivers ev to every matching subscriber. Calls are serialized so
// every subscriber observes the same global event order; callers publish only
// after the corresponding mutation has committed.
func (b *InProcessBus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, sub := range b.subs {
		if len(sub.types) > 0 && !sub.types[ev.Type] {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// Slow subscriber: drop rather than block mutation throughput.
			b.log.Warn("event dropped for slow subscriber",
				zap.String("subscriber", id),
				zap.String("event", string(ev.Type)))
		}
	}
}

// Subscribe registers interest in the given event types; with no types the
// subscription receives everything.
func (b *InProcessBus) Subscribe(types ...Type) *Subscription {
	filter := make(map[Type]bool, len(types))
	for _, t := range types {
		filter[t] = true
	}

	ch := make(chan Event, subscriberBuffer)
	id := uuid.NewString()

	b.mu.Lock()
	b.subs[id] = &subscriber{types: filter, ch: ch}
	b.mu.Unlock()

	return &Subscription{ID: id, C: ch, bus: b, ch: ch}
}

func (b *InProcessBus) unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}
