package attach

import "errors"

// State is the lifecycle position of one attachment slot. A slot is in
// exactly one state at a time.
type State int

const (
	Empty State = iota
	RemoteReference
	LocalPending
)

// Change records what the user did to a slot during an edit session so the
// serializer can tell the upstream whether to keep, replace or delete the
// stored image.
type Change int

const (
	Unchanged Change = iota
	Replaced
	Cleared
)

var (
	ErrGroupFull = errors.New("image group is at capacity")
)

// Slot holds either nothing, a remote URL, or a staged local file with a
// revocable preview handle.
type Slot struct {
	state      State
	url        string
	stagedPath string
	previewID  string
	change     Change
}

func NewSlot() *Slot { return &Slot{} }

// FromRemote builds a slot hydrated from a fetched record.
func FromRemote(url string) *Slot {
	return &Slot{state: RemoteReference, url: url}
}

func (s *Slot) State() State      { return s.state }
func (s *Slot) Change() Change    { return s.change }
func (s *Slot) URL() string       { return s.url }
func (s *Slot) Staged() string    { return s.stagedPath }
func (s *Slot) PreviewID() string { return s.previewID }

// Group is an ordered multi-image group with a fixed capacity.
type Group struct {
	Slots []*Slot
	Cap   int
}

func NewGroup(cap int) *Group {
	return &Group{Cap: cap}
}

// Remotes returns the URLs of slots still referencing upstream images, in
// slot order.
func (g *Group) Remotes() []string {
	var urls []string
	for _, s := range g.Slots {
		if s.state == RemoteReference {
			urls = append(urls, s.url)
		}
	}
	return urls
}

// VisibleAt returns the i-th slot as the admin UI sees the group. Emptied
// slots stay in Slots for removal bookkeeping but are never rendered, so
// client indices count non-empty slots only.
func (g *Group) VisibleAt(i int) (*Slot, bool) {
	if i < 0 {
		return nil, false
	}
	for _, s := range g.Slots {
		if s.state == Empty {
			continue
		}
		if i == 0 {
			return s, true
		}
		i--
	}
	return nil, false
}

// Pending returns the staged paths of locally attached slots, in slot order.
func (g *Group) Pending() []*Slot {
	var pending []*Slot
	for _, s := range g.Slots {
		if s.state == LocalPending {
			pending = append(pending, s)
		}
	}
	return pending
}

// Removed returns the remote URLs the upstream should delete: images the
// user explicitly cleared plus the old image behind every replacement.
func (g *Group) Removed() []string {
	var urls []string
	for _, s := range g.Slots {
		if s.url == "" {
			continue
		}
		if s.change == Cleared || s.change == Replaced {
			urls = append(urls, s.url)
		}
	}
	return urls
}
