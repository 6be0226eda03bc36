package session

import (
	"bytes"
	"testing"
	"time"
)

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")

func TestOpenUnknownEntity(t *testing.T) {
	st := NewStore()
	if _, err := st.Open("spaceship", "create", "", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown entity")
	}
}

func TestSubmitInFlightFlag(t *testing.T) {
	st := NewStore()
	s, err := st.Open("tour", "create", "", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := s.BeginSubmit(); err != nil {
		t.Fatal(err)
	}
	if err := s.BeginSubmit(); err != ErrSubmitInFlight {
		t.Fatalf("second submit got %v, want ErrSubmitInFlight", err)
	}

	s.EndSubmit()
	if err := s.BeginSubmit(); err != nil {
		t.Fatalf("flag not cleared: %v", err)
	}
	s.EndSubmit()
	if s.InFlight() {
		t.Fatal("flag stuck")
	}
}

func TestCloseReleasesPreviews(t *testing.T) {
	st := NewStore()
	s, err := st.Open("tour", "create", "", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	thumb := s.Draft.Slot("thumbnail")
	if err := s.Tracker.Attach(thumb, "t.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}
	images := s.Draft.SlotGroup("images")
	if _, err := s.Tracker.AttachToGroup(images, "i.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}

	st.Close(s.ID)
	if s.Alive() {
		t.Fatal("closed session reports alive")
	}
	if s.Tracker.Created() != s.Tracker.Released() {
		t.Fatalf("created=%d released=%d after teardown", s.Tracker.Created(), s.Tracker.Released())
	}
	if _, ok := st.Get(s.ID); ok {
		t.Fatal("closed session still in store")
	}

	// closing again is a no-op
	st.Close(s.ID)
	if s.Tracker.Released() != 2 {
		t.Fatalf("double close changed accounting: %d", s.Tracker.Released())
	}
}

func TestSubmitAfterCloseRejected(t *testing.T) {
	st := NewStore()
	s, _ := st.Open("blog", "create", "", t.TempDir())
	st.Close(s.ID)
	if err := s.BeginSubmit(); err != ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}

func TestMarkHydrated(t *testing.T) {
	st := NewStore()
	s, _ := st.Open("tour", "edit", "abc123", t.TempDir())
	if again := s.MarkHydrated(); again {
		t.Fatal("first hydration flagged as repeat")
	}
	if again := s.MarkHydrated(); !again {
		t.Fatal("second hydration not flagged")
	}
}

func TestSweepClosesOnlyStale(t *testing.T) {
	st := NewStore()
	old, _ := st.Open("tour", "create", "", t.TempDir())
	fresh, _ := st.Open("blog", "create", "", t.TempDir())
	old.Created = time.Now().Add(-2 * time.Hour)

	st.Sweep(time.Hour)

	if _, ok := st.Get(old.ID); ok {
		t.Fatal("stale session survived sweep")
	}
	if _, ok := st.Get(fresh.ID); !ok {
		t.Fatal("fresh session was swept")
	}
}
