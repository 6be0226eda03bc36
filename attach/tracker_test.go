package attach

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

// minimal bytes that sniff as image/gif
var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")

func stage(t *testing.T, tr *Tracker, s *Slot) {
	t.Helper()
	if err := tr.Attach(s, "photo.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
		t.Fatal(err)
	}
}

func TestAttachStagesAndReplaces(t *testing.T) {
	tr := NewTracker(t.TempDir())
	s := NewSlot()

	stage(t, tr, s)
	if s.State() != LocalPending || s.Change() != Replaced {
		t.Fatalf("state=%v change=%v", s.State(), s.Change())
	}
	first := s.Staged()
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("staged file missing: %v", err)
	}

	// choosing a new file releases the previous preview
	stage(t, tr, s)
	if s.Staged() == first {
		t.Fatal("second attach reused the first staged path")
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Fatalf("first preview not released: %v", err)
	}
	if tr.Created() != 2 || tr.Released() != 1 {
		t.Fatalf("created=%d released=%d", tr.Created(), tr.Released())
	}
}

func TestAttachRejectsBadUpload(t *testing.T) {
	tr := NewTracker(t.TempDir())
	s := NewSlot()

	if err := tr.Attach(s, "notes.txt", "text/plain", bytes.NewReader([]byte("hello"))); err == nil {
		t.Fatal("expected extension rejection")
	}
	if s.State() != Empty {
		t.Fatal("failed attach must leave the slot unchanged")
	}
	if tr.Created() != 0 {
		t.Fatalf("created=%d after failed attach", tr.Created())
	}
}

func TestGroupCapEnforced(t *testing.T) {
	tr := NewTracker(t.TempDir())
	g := NewGroup(3)

	for i := 0; i < 3; i++ {
		if _, err := tr.AttachToGroup(g, "photo.gif", "image/gif", bytes.NewReader(gifBytes)); err != nil {
			t.Fatal(err)
		}
	}
	if g.Active() != 3 {
		t.Fatalf("active=%d, want 3", g.Active())
	}

	_, err := tr.AttachToGroup(g, "photo.gif", "image/gif", bytes.NewReader(gifBytes))
	if !errors.Is(err, ErrGroupFull) {
		t.Fatalf("expected ErrGroupFull, got %v", err)
	}
	// the group stays at exactly the cap
	if g.Active() != 3 {
		t.Fatalf("active=%d after rejected attach", g.Active())
	}
}

func TestDetachChangeSignals(t *testing.T) {
	tr := NewTracker(t.TempDir())

	// local-only slot: detaching leaves nothing to delete upstream
	s := NewSlot()
	stage(t, tr, s)
	tr.Detach(s)
	if s.State() != Empty || s.Change() != Unchanged {
		t.Fatalf("state=%v change=%v", s.State(), s.Change())
	}

	// remote slot: detaching must mark the stored image for deletion
	r := FromRemote("https://cdn.example.com/old.jpg")
	tr.Detach(r)
	if r.Change() != Cleared {
		t.Fatalf("change=%v, want Cleared", r.Change())
	}

	// replacing a remote keeps its url for the removal list
	rep := FromRemote("https://cdn.example.com/rep.jpg")
	stage(t, tr, rep)
	if rep.Change() != Replaced || rep.URL() != "https://cdn.example.com/rep.jpg" {
		t.Fatalf("change=%v url=%q", rep.Change(), rep.URL())
	}
}

func TestGroupRemoved(t *testing.T) {
	tr := NewTracker(t.TempDir())
	g := NewGroup(5)
	g.Slots = append(g.Slots,
		FromRemote("https://cdn.example.com/a.jpg"),
		FromRemote("https://cdn.example.com/b.jpg"))

	tr.Detach(g.Slots[0])
	removed := g.Removed()
	if len(removed) != 1 || removed[0] != "https://cdn.example.com/a.jpg" {
		t.Fatalf("removed=%v", removed)
	}
}

func TestVisibleAtSkipsEmptiedSlots(t *testing.T) {
	tr := NewTracker(t.TempDir())
	g := NewGroup(5)
	g.Slots = append(g.Slots,
		FromRemote("https://cdn.example.com/a.jpg"),
		FromRemote("https://cdn.example.com/b.jpg"))

	tr.Detach(g.Slots[0])

	// the emptied slot stays in Slots but must not shift visible indexing
	s, found := g.VisibleAt(0)
	if !found || s.URL() != "https://cdn.example.com/b.jpg" {
		t.Fatalf("visible 0 = %v %v", s, found)
	}
	if _, found := g.VisibleAt(1); found {
		t.Fatal("only one image is visible")
	}
	if _, found := g.VisibleAt(-1); found {
		t.Fatal("negative index resolved")
	}
}

func TestCloseReleasesEverythingOnce(t *testing.T) {
	tr := NewTracker(t.TempDir())
	slots := []*Slot{NewSlot(), NewSlot(), NewSlot()}
	for _, s := range slots {
		stage(t, tr, s)
	}

	tr.Close(slots)
	if tr.Created() != tr.Released() {
		t.Fatalf("created=%d released=%d, must match at teardown", tr.Created(), tr.Released())
	}

	// double close must not double count
	tr.Close(slots)
	if tr.Released() != 3 {
		t.Fatalf("released=%d after second close", tr.Released())
	}
}
