// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package events delivers poll changes to live clients.

A Broker is handed to the poll store as its notifier and fans every
committed mutation out to subscribers:

	broker := events.NewBroker(events.DefaultBuffer)
	store := poll.NewStore(poll.WithNotifier(broker))

	ch, cancel := broker.Subscribe()
	defer cancel()
	for ev := range ch {
		// ev.Kind, ev.Question, ev.Option
	}

Delivery is best effort. Publishing never blocks the store; a subscriber
that falls behind loses events and should re-read the snapshot.
*/
package events
