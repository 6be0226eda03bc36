package session

import (
	"errors"
	"sync"
	"time"

	"luxadmin/attach"
	"luxadmin/draft"

	"github.com/google/uuid"
)

var (
	ErrSubmitInFlight = errors.New("a submit is already in flight for this draft")
	ErrClosed         = errors.New("draft session is closed")
)

// Session is the single source of truth for one draft being created or
// edited. The draft is owned exclusively by its session; no cross-session
// sharing.
type Session struct {
	ID       string
	Entity   string
	Mode     string // "create" or "edit"
	RemoteID string // upstream id, edit mode only
	Draft    *draft.Draft
	Tracker  *attach.Tracker
	Created  time.Time

	mu       sync.Mutex
	inFlight bool
	alive    bool
	hydrated bool
}

// BeginSubmit claims the in-flight flag; a second submit while one is in
// flight is rejected. EndSubmit must run on every exit path.
func (s *Session) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.alive {
		return ErrClosed
	}
	if s.inFlight {
		return ErrSubmitInFlight
	}
	s.inFlight = true
	return nil
}

func (s *Session) EndSubmit() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Alive reports whether the session still exists; async completions
// arriving after teardown must no-op instead of updating a dead session.
func (s *Session) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

// MarkHydrated records a hydration pass and reports whether one had
// already happened. Re-hydration overwrites in-progress edits; accepted
// behavior, surfaced to callers so they can log it.
func (s *Session) MarkHydrated() (again bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	again = s.hydrated
	s.hydrated = true
	return again
}

// Store owns every live draft session.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Open creates a session for one entity draft. previewDir is where the
// session's tracker stages local attachments.
func (st *Store) Open(entity, mode, remoteID, previewDir string) (*Session, error) {
	shape := draft.ShapeFor(entity)
	if shape == nil {
		return nil, errors.New("unknown entity type: " + entity)
	}
	s := &Session{
		ID:       uuid.New().String(),
		Entity:   entity,
		Mode:     mode,
		RemoteID: remoteID,
		Draft:    draft.New(shape),
		Tracker:  attach.NewTracker(previewDir),
		Created:  time.Now(),
		alive:    true,
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s, nil
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Close tears a session down: every outstanding preview handle is released
// exactly once and late completions become no-ops.
func (st *Store) Close(id string) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return
	}
	s.mu.Lock()
	s.alive = false
	s.mu.Unlock()
	s.Tracker.Close(s.Draft.Slots())
}

// Sweep closes sessions older than maxAge; abandoned drafts are not
// persisted anywhere.
func (st *Store) Sweep(maxAge time.Duration) {
	st.mu.Lock()
	var stale []string
	for id, s := range st.sessions {
		if time.Since(s.Created) > maxAge {
			stale = append(stale, id)
		}
	}
	st.mu.Unlock()
	for _, id := range stale {
		st.Close(id)
	}
}
