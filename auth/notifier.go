// Package auth carries the session-change notification used to react to
// logins and logouts without a global current-user singleton.
package auth

import "sync"

// EventKind distinguishes session transitions.
type EventKind string

const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
)

// Event describes one session transition. UserID is empty on logout of an
// anonymous session.
type Event struct {
	Kind   EventKind
	UserID string
	Email  string
}

// Notifier fans session events out to subscribers. A new subscriber is
// immediately pushed the current session state once, then receives every
// subsequent change until it unsubscribes.
type Notifier struct {
	mu      sync.Mutex
	current Event
	seeded  bool
	subs    map[int]chan Event
	nextID  int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned channel first delivers the
// current state (if any session event happened yet), then each new event.
// The unsubscribe func closes the channel and must be called exactly once.
func (n *Notifier) Subscribe() (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// Buffered so the initial push and slow consumers do not block Publish.
	ch := make(chan Event, 8)
	id := n.nextID
	n.nextID++
	n.subs[id] = ch

	if n.seeded {
		ch <- n.current
	}

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
	}
	return ch, unsubscribe
}

// Publish records the event as the current state and notifies all
// subscribers. A subscriber whose buffer is full misses the event rather
// than stalling the publisher.
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = e
	n.seeded = true
	for _, ch := range n.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
