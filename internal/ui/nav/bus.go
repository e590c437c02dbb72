// internal/ui/nav/bus.go
package nav

import (
	"sync"
)

// Event is one committed navigation. Path carries the full path plus
// query string. Referrer is empty for internal navigations and holds
// the external referrer on the initial load.
type Event struct {
	Path     string
	Referrer string
}

// Bus is an explicit navigation event bus: the routing layer publishes
// every committed navigation, and subscribers react. This replaces the
// DOM-observation heuristics a browser host would need, since here the
// router owns the lifecycle and can simply tell us.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Event
	closed bool
}

// NewBus creates a navigation event bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a subscriber. The channel is buffered; a
// subscriber that falls far behind drops the oldest events rather than
// blocking the router.
func (b *Bus) Subscribe() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	b.subs = append(b.subs, ch)
	return ch
}

// Navigated publishes an internal navigation to path
func (b *Bus) Navigated(path string) {
	b.publish(Event{Path: path})
}

// NavigatedFrom publishes a navigation to path arriving from an
// external referrer
func (b *Bus) NavigatedFrom(path, referrer string) {
	b.publish(Event{Path: path, Referrer: referrer})
}

func (b *Bus) publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			// Drop the oldest event to make room
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// Close shuts the bus down; subsequent publishes are ignored
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
