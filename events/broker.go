// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"log/slog"
	"sync"

	"github.com/PrakharGupta80900/Poll/poll"
)

// DefaultBuffer is the per-subscriber channel size
const DefaultBuffer = 16

// Broker fans poll events out to subscribers. Notify never blocks: a
// subscriber whose buffer is full misses the event.
type Broker struct {
	mu     sync.Mutex
	subs   map[chan poll.Event]struct{}
	buffer int
}

func NewBroker(buffer int) *Broker {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Broker{
		subs:   make(map[chan poll.Event]struct{}),
		buffer: buffer,
	}
}

var _ poll.Notifier = (*Broker)(nil)

// Subscribe registers a new subscriber. The returned cancel func
// unregisters it and closes the channel; it is safe to call twice.
func (b *Broker) Subscribe() (<-chan poll.Event, func()) {
	ch := make(chan poll.Event, b.buffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Notify implements poll.Notifier
func (b *Broker) Notify(ev poll.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			slog.Warn("dropping event for slow subscriber", "kind", ev.Kind)
		}
	}
}

// Subscribers returns the number of active subscribers
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
