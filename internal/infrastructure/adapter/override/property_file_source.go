package override

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

// PropertyFileSource reads overrides from a properties file of
// "log.tag.<AppTag>=LEVEL" lines and can reload it when it changes
type PropertyFileSource struct {
	path    string
	levels  atomic.Pointer[map[string]entity.Priority]
	onError func(error)

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewPropertyFileSource loads path. A missing file yields no overrides.
// onError receives reload and watch failures, it may be nil.
func NewPropertyFileSource(path string, onError func(error)) (*PropertyFileSource, error) {
	if onError == nil {
		onError = func(error) {}
	}
	s := &PropertyFileSource{path: path, onError: onError}
	empty := map[string]entity.Priority{}
	s.levels.Store(&empty)

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Lookup returns the override for tag
func (s *PropertyFileSource) Lookup(tag string) (entity.Priority, bool) {
	p, ok := (*s.levels.Load())[tag]
	return p, ok
}

// Path returns the watched file
func (s *PropertyFileSource) Path() string {
	return s.path
}

// Reload rereads the file. Keys outside log.tag.* are ignored; entries with
// an unknown level are dropped and reported together in the returned error.
func (s *PropertyFileSource) Reload() error {
	values, err := godotenv.Read(s.path)
	if errors.Is(err, os.ErrNotExist) {
		empty := map[string]entity.Priority{}
		s.levels.Store(&empty)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read override file %s: %w", s.path, err)
	}

	levels := make(map[string]entity.Priority, len(values))
	var invalid []error
	for key, value := range values {
		tag, ok := TagOf(key)
		if !ok {
			continue
		}
		p, err := entity.ParsePriority(value)
		if err != nil {
			invalid = append(invalid, fmt.Errorf("%s: %w", key, err))
			continue
		}
		levels[tag] = p
	}
	s.levels.Store(&levels)
	return errors.Join(invalid...)
}

// Watch reloads the file whenever it is written, created or replaced, until
// Close. The directory is watched so editors that rename over the file work.
func (s *PropertyFileSource) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watch(watcher, s.done)
	return nil
}

func (s *PropertyFileSource) watch(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	target := filepath.Clean(s.path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				if err := s.Reload(); err != nil {
					s.onError(err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.onError(err)
		}
	}
}

// Close stops watching
func (s *PropertyFileSource) Close() error {
	s.mu.Lock()
	watcher, done := s.watcher, s.done
	s.watcher, s.done = nil, nil
	s.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	<-done
	return err
}
