package override

import (
	"sync"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
)

// MapSource is an in-memory OverrideStore, administered at runtime
type MapSource struct {
	mu     sync.RWMutex
	levels map[string]entity.Priority
}

// NewMapSource creates a store holding a copy of levels
func NewMapSource(levels map[string]entity.Priority) *MapSource {
	s := &MapSource{levels: make(map[string]entity.Priority, len(levels))}
	for tag, p := range levels {
		s.levels[tag] = p
	}
	return s
}

// Lookup returns the override for tag
func (s *MapSource) Lookup(tag string) (entity.Priority, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.levels[tag]
	return p, ok
}

// Set stores the override for tag
func (s *MapSource) Set(tag string, priority entity.Priority) error {
	if tag == "" {
		return &errs.TagError{Tag: tag, Reason: "the tag is null or empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[tag] = priority
	return nil
}

// Delete removes the override for tag
//
// Possible errors:
//   - errs.ErrOverrideNotFound: there is no override for tag
func (s *MapSource) Delete(tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.levels[tag]; !ok {
		return errs.ErrOverrideNotFound
	}
	delete(s.levels, tag)
	return nil
}

// Snapshot returns a copy of every override
func (s *MapSource) Snapshot() map[string]entity.Priority {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]entity.Priority, len(s.levels))
	for tag, p := range s.levels {
		out[tag] = p
	}
	return out
}
