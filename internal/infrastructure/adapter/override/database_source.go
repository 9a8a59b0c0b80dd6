package override

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/persistence"
)

// DatabaseSourceOptions configures a DatabaseSource
type DatabaseSourceOptions struct {
	RefreshInterval core.Duration
	QueryTimeout    core.Duration
	// OnError receives refresh failures, it may be nil
	OnError func(error)
}

// DatabaseSource is an OverrideStore backed by the tag override repository.
// Lookups read an in-memory snapshot that a background loop refreshes, so
// checking a level never queries the database.
type DatabaseSource struct {
	repo  persistence.TagOverrideRepository
	clock core.TimeProvider
	opts  DatabaseSourceOptions

	snapshot atomic.Pointer[map[string]entity.Priority]
	// writeMu serializes repository access with publishing the snapshot
	writeMu sync.Mutex

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDatabaseSource creates a source with an empty snapshot
func NewDatabaseSource(repo persistence.TagOverrideRepository, clock core.TimeProvider, opts DatabaseSourceOptions) *DatabaseSource {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = 30 * core.Second
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 5 * core.Second
	}
	if opts.OnError == nil {
		opts.OnError = func(error) {}
	}

	s := &DatabaseSource{repo: repo, clock: clock, opts: opts}
	empty := map[string]entity.Priority{}
	s.snapshot.Store(&empty)
	return s
}

// Lookup returns the override for tag from the last snapshot
func (s *DatabaseSource) Lookup(tag string) (entity.Priority, bool) {
	p, ok := (*s.snapshot.Load())[tag]
	return p, ok
}

// Refresh replaces the snapshot with the repository's content. Writes
// through Set and Delete wait for it, so a listing never overwrites a
// newer write.
func (s *DatabaseSource) Refresh(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := s.clock.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	levels, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh overrides: %w", err)
	}
	if levels == nil {
		levels = map[string]entity.Priority{}
	}
	s.snapshot.Store(&levels)
	return nil
}

// Start loads the snapshot once, then keeps refreshing it every
// RefreshInterval until ctx is done or Stop is called
func (s *DatabaseSource) Start(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.cancel != nil {
		return nil
	}

	if err := s.Refresh(ctx); err != nil {
		s.opts.OnError(err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
	return nil
}

func (s *DatabaseSource) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.opts.RefreshInterval):
			if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
				s.opts.OnError(err)
			}
		}
	}
}

// Stop ends the refresh loop and waits for it
func (s *DatabaseSource) Stop() {
	s.runMu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Set persists the override and publishes it immediately
func (s *DatabaseSource) Set(tag string, priority entity.Priority) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := s.clock.WithTimeout(context.Background(), s.opts.QueryTimeout)
	defer cancel()

	if err := s.repo.Upsert(ctx, tag, priority); err != nil {
		return err
	}
	s.update(func(levels map[string]entity.Priority) {
		levels[tag] = priority
	})
	return nil
}

// Delete removes the override from the database and the snapshot
//
// Possible errors:
//   - errs.ErrOverrideNotFound: there is no override for tag
func (s *DatabaseSource) Delete(tag string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := s.clock.WithTimeout(context.Background(), s.opts.QueryTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, tag); err != nil {
		return err
	}
	s.update(func(levels map[string]entity.Priority) {
		delete(levels, tag)
	})
	return nil
}

// update publishes a modified copy of the snapshot. The caller holds writeMu.
func (s *DatabaseSource) update(change func(map[string]entity.Priority)) {
	current := *s.snapshot.Load()
	next := make(map[string]entity.Priority, len(current)+1)
	for tag, p := range current {
		next[tag] = p
	}
	change(next)
	s.snapshot.Store(&next)
}
