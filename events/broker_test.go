// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"testing"
	"time"

	"github.com/PrakharGupta80900/Poll/poll"
)

func TestBrokerDelivers(t *testing.T) {
	b := NewBroker(4)
	ch1, cancel1 := b.Subscribe()
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Notify(poll.Event{Kind: poll.EventPollCreated, Question: "Q"})

	for i, ch := range []<-chan poll.Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Kind != poll.EventPollCreated || ev.Question != "Q" {
				t.Errorf("subscriber %d got %+v", i, ev)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d got nothing", i)
		}
	}
}

func TestBrokerDropsForSlowSubscriber(t *testing.T) {
	b := NewBroker(1)
	ch, cancel := b.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Notify(poll.Event{Kind: poll.EventVoteRecorded})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full subscriber")
	}

	if len(ch) != 1 {
		t.Errorf("expected 1 buffered event, got %d", len(ch))
	}
}

func TestBrokerCancel(t *testing.T) {
	b := NewBroker(0)
	ch, cancel := b.Subscribe()

	if b.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", b.Subscribers())
	}

	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after cancel")
	}
	if b.Subscribers() != 0 {
		t.Errorf("expected 0 subscribers, got %d", b.Subscribers())
	}

	// publishing after cancel must not panic
	b.Notify(poll.Event{Kind: poll.EventPollDeleted})
}

func TestBrokerWithStore(t *testing.T) {
	b := NewBroker(8)
	ch, cancel := b.Subscribe()
	defer cancel()

	s := poll.NewStore(poll.WithNotifier(b))
	ctx := context.Background()
	if err := s.CreatePoll(ctx, "Q", []string{"A", "B"}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Vote(ctx, "p1", "Q", "B"); err != nil {
		t.Fatal(err)
	}

	want := []string{poll.EventPollCreated, poll.EventVoteRecorded}
	for _, kind := range want {
		ev := <-ch
		if ev.Kind != kind {
			t.Errorf("expected %s, got %s", kind, ev.Kind)
		}
	}
}
