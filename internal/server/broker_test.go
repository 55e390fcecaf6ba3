package server

import (
	"encoding/json"
	"testing"
)

func TestBrokerPublishSubscribe(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("sess-1")
	defer b.Unsubscribe("sess-1", ch)

	b.Publish("sess-1", SSEEvent{Type: "vitals", GameMinutes: 5})

	select {
	case data := <-ch:
		var ev SSEEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if ev.Type != "vitals" || ev.GameMinutes != 5 {
			t.Errorf("event = %+v", ev)
		}
	default:
		t.Fatal("expected an event")
	}
}

func TestBrokerIsolatesSessions(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("sess-1")
	defer b.Unsubscribe("sess-1", ch)

	b.Publish("sess-2", SSEEvent{Type: "vitals"})

	select {
	case <-ch:
		t.Fatal("received another session's event")
	default:
	}
}

func TestBrokerDropsWhenFull(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("sess-1")
	defer b.Unsubscribe("sess-1", ch)

	// Buffer is 16; extra publishes must not block.
	for i := 0; i < 40; i++ {
		b.Publish("sess-1", SSEEvent{Type: "vitals", GameMinutes: i})
	}

	if got := len(ch); got != 16 {
		t.Errorf("buffered = %d, want 16", got)
	}
}

func TestBrokerUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("sess-1")
	b.Unsubscribe("sess-1", ch)

	b.Publish("sess-1", SSEEvent{Type: "vitals"})

	if len(ch) != 0 {
		t.Error("unsubscribed channel still receives events")
	}
}
