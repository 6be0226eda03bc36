package attach

import (
	"fmt"
	"io"
	"log"
	"sync"

	"luxadmin/filemgr"
)

// Tracker owns every preview handle created for one draft session. No other
// component may release them.
type Tracker struct {
	Dir      string
	MaxBytes int64

	mu       sync.Mutex
	created  int
	released int
}

func NewTracker(dir string) *Tracker {
	return &Tracker{Dir: dir, MaxBytes: filemgr.MaxImageSize}
}

// Attach stages a newly chosen file into the slot. Any previous local
// preview for the slot is released first, then the slot transitions to
// LocalPending. Constraint violations (extension, MIME, size) are returned
// to the caller and leave the slot unchanged.
func (t *Tracker) Attach(s *Slot, originalName, declaredMIME string, r io.Reader) error {
	staged, err := filemgr.StageFile(r, originalName, declaredMIME, t.Dir, t.MaxBytes)
	if err != nil {
		return err
	}

	if _, err := filemgr.MakeThumb(staged); err != nil {
		log.Printf("preview thumb skipped for %s: %v", staged, err)
	}

	t.release(s)

	t.mu.Lock()
	t.created++
	t.mu.Unlock()

	s.change = Replaced
	s.state = LocalPending
	s.stagedPath = staged
	s.previewID = staged
	return nil
}

// AttachToGroup appends a fresh slot to the group and stages the file into
// it. Returns ErrGroupFull when the group is already at capacity.
func (t *Tracker) AttachToGroup(g *Group, originalName, declaredMIME string, r io.Reader) (*Slot, error) {
	if g.Cap > 0 && g.Active() >= g.Cap {
		return nil, fmt.Errorf("%w: max %d images", ErrGroupFull, g.Cap)
	}
	s := NewSlot()
	if err := t.Attach(s, originalName, declaredMIME, r); err != nil {
		return nil, err
	}
	g.Slots = append(g.Slots, s)
	return s, nil
}

// Detach releases the preview if present and empties the slot. A slot that
// held (or replaced) an upstream image ends up Cleared so the serializer can
// tell the backend to delete it.
func (t *Tracker) Detach(s *Slot) {
	t.release(s)
	if s.url != "" {
		s.change = Cleared
	} else {
		s.change = Unchanged
	}
	s.state = Empty
	s.stagedPath = ""
}

// release revokes the slot's preview handle exactly once; releasing an
// already-released slot is a no-op (re-render races).
func (t *Tracker) release(s *Slot) {
	if s.previewID == "" {
		return
	}
	filemgr.Discard(s.stagedPath)
	s.previewID = ""

	t.mu.Lock()
	t.released++
	t.mu.Unlock()
}

// Close releases every outstanding preview of the given slots. Called on
// session teardown.
func (t *Tracker) Close(slots []*Slot) {
	for _, s := range slots {
		t.release(s)
	}
}

// Created and Released expose handle accounting; at session end the two
// must match.
func (t *Tracker) Created() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.created
}

func (t *Tracker) Released() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released
}

// Active counts slots currently holding an image (remote or pending).
func (g *Group) Active() int {
	n := 0
	for _, s := range g.Slots {
		if s.state == RemoteReference || s.state == LocalPending {
			n++
		}
	}
	return n
}
