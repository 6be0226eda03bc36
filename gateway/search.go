package gateway

import "sync"

// SearchGuard tags each debounced list-filter request with a generation so
// a slow, stale response cannot overwrite fresher state. "Last response
// wins" is not enough: the last response to arrive may answer an older
// request.
type SearchGuard struct {
	mu  sync.Mutex
	gen map[string]uint64
}

func NewSearchGuard() *SearchGuard {
	return &SearchGuard{gen: make(map[string]uint64)}
}

// Begin registers a new request for key and returns its generation tag.
func (g *SearchGuard) Begin(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen[key]++
	return g.gen[key]
}

// Stale reports whether a response tagged gen has been superseded by a
// newer request for key; stale results must be dropped, not applied.
func (g *SearchGuard) Stale(key string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen[key] != gen
}
