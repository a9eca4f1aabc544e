package realtime

import (
	"testing"
	"time"
)

func TestSubscribeReceivesPublishedEvents(t *testing.T) {
	hub := NewHub(4)
	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	hub.Publish(ChangeEvent{Entity: "contacts", Action: ActionImport})

	select {
	case event := <-ch:
		if event.Entity != "contacts" || event.Action != ActionImport {
			t.Errorf("unexpected event: %+v", event)
		}
		if event.Time.IsZero() {
			t.Error("publish should stamp a time")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSlowListenerDropsEvents(t *testing.T) {
	hub := NewHub(1)
	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	// The buffer holds one event; the second must be dropped, not block.
	hub.Publish(ChangeEvent{Entity: "documents", Action: ActionImport})
	done := make(chan struct{})
	go func() {
		hub.Publish(ChangeEvent{Entity: "assets", Action: ActionImport})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish to a full listener must not block")
	}

	if event := <-ch; event.Entity != "documents" {
		t.Errorf("expected the first event to survive, got %+v", event)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(4)
	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)
	hub.Unsubscribe(id) // second call is a no-op

	if _, open := <-ch; open {
		t.Error("channel should be closed after Unsubscribe")
	}
	if hub.ListenerCount() != 0 {
		t.Errorf("expected no listeners, got %d", hub.ListenerCount())
	}
}
