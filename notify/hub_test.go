package notify

import (
	"encoding/json"
	"testing"
	"time"

	"luxadmin/models"
)

func TestHubRegisterPublishUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
	}
	hub.register <- client

	hub.Publish(models.Index{EntityType: "tour", EntityId: "t1", Message: "tour-submitted"})

	select {
	case got := <-client.Send:
		var event outboundEvent
		if err := json.Unmarshal(got, &event); err != nil {
			t.Fatal(err)
		}
		if event.EntityType != "tour" || event.EntityID != "t1" || event.Event != "tour-submitted" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestPublishAfterStopReturns(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		hub.Publish(models.Index{EntityType: "tour", EntityId: "t9", Message: "tour-submitted"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("publish blocked after shutdown")
	}
}

func TestSlowClientDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{Send: make(chan []byte)} // unbuffered, never read
	ok := &Client{Send: make(chan []byte, 10)}
	hub.register <- slow
	hub.register <- ok

	hub.Publish(models.Index{EntityType: "blog", EntityId: "b1", Message: "blog-deleted"})

	select {
	case <-ok.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("healthy client did not receive event")
	}

	// the slow client's channel was closed on drop
	select {
	case _, open := <-slow.Send:
		if open {
			t.Fatal("expected closed channel for dropped client")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("slow client channel not closed")
	}
}
