package reconciler

import (
	"sync"
	"time"

	"freshd/internal/api"
)

// subscriberBuffer is the channel depth per subscriber. A subscriber that
// falls further behind than this loses events rather than blocking a cycle.
const subscriberBuffer = 16

// Broadcaster fans phase-transition events out to any number of subscribers.
// Subscriptions carry an explicit unsubscribe func so repeated attach/detach
// (reconnecting WebSocket clients, test runs) cannot leak listeners.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan api.PhaseEvent
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan api.PhaseEvent)}
}

// Subscribe attaches a new subscriber and returns its event channel together
// with an unsubscribe func. The unsubscribe func is idempotent and closes
// the channel.
func (b *Broadcaster) Subscribe() (<-chan api.PhaseEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan api.PhaseEvent, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
	return ch, unsubscribe
}

// Publish delivers an event to all current subscribers. Delivery is
// non-blocking: a full subscriber channel drops the event.
func (b *Broadcaster) Publish(event api.PhaseEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of attached subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
