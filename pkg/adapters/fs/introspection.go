package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	Courses       int    `json:"courses"`
	AuthorSet     bool   `json:"author_set"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	state := StoreState{Path: s.Path}

	s.mu.Lock()
	if cat, err := s.load(); err == nil {
		state.Courses = len(cat.Courses)
		state.AuthorSet = cat.AuthorName != ""
	}
	s.mu.Unlock()

	s.stateMu.RLock()
	state.WatcherActive = s.watcherActive
	s.stateMu.RUnlock()

	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "catalog-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.watcherActive = active
}
