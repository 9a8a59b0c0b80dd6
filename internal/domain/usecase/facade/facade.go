package facade

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

// Denied is returned instead of a byte count when a message was filtered out
const Denied = -1

// LogTag is the component tag of the façade's own messages
const LogTag = "LogCat"

// Options holds the collaborators of a Facade
type Options struct {
	// LineLogger receives every admitted line. Required.
	LineLogger coreport.LineLogger
	// Overrides supplies the minimum priority per application tag.
	// A nil source has no entries.
	Overrides coreport.OverrideSource

	Stacks  coreport.StackCapturer
	Threads coreport.ThreadEnumerator
	Memory  coreport.MemoryReporter

	// FramePrefixes names functions, by prefix, that belong to the stack
	// capture path; a leading run of matching frames is dropped from dumps.
	// The façade's own frames are always dropped, so a dump starts at the
	// caller rather than at the capture call.
	FramePrefixes []string
}

// state is published as a whole so readers never see a tag from one init
// paired with the flag of another
type state struct {
	appTag       string
	forceVerbose bool
}

type obfuscatorHolder struct {
	obfuscator coreport.Obfuscator
}

// Facade is a process-wide logging façade over a host line logger
type Facade struct {
	sink          coreport.LineLogger
	overrides     coreport.OverrideSource
	stacks        coreport.StackCapturer
	threads       coreport.ThreadEnumerator
	memory        coreport.MemoryReporter
	framePrefixes []string

	initMu sync.Mutex
	state  atomic.Pointer[state]

	obfuscator         atomic.Pointer[obfuscatorHolder]
	obfuscateByDefault atomic.Bool
}

var _ coreport.Logger = (*Facade)(nil)

// New creates an uninitialized Facade. It panics when opts.LineLogger is nil.
func New(opts Options) *Facade {
	if opts.LineLogger == nil {
		panic("facade: LineLogger is required")
	}

	prefixes := make([]string, 0, len(opts.FramePrefixes)+1)
	prefixes = append(prefixes, packagePrefix())
	prefixes = append(prefixes, opts.FramePrefixes...)

	return &Facade{
		sink:          opts.LineLogger,
		overrides:     opts.Overrides,
		stacks:        opts.Stacks,
		threads:       opts.Threads,
		memory:        opts.Memory,
		framePrefixes: prefixes,
	}
}

// Init initializes the façade with the application tag.
// It is equivalent to InitVerbose(tag, false).
func (f *Facade) Init(tag string) error {
	return f.InitVerbose(tag, false)
}

// InitVerbose initializes the façade with the application tag and the
// force-verbose flag, then announces itself at DEBUG.
//
// Possible errors:
//   - errs.ErrInvalidTag: tag is empty, whitespace only or longer than 23 bytes once trimmed
//
// Calling it again replaces the previous tag and flag. A failed call keeps them.
func (f *Facade) InitVerbose(tag string, forceVerbose bool) error {
	appTag, err := entity.NewAppTag(tag)
	if err != nil {
		return err
	}

	f.initMu.Lock()
	f.state.Store(&state{appTag: appTag, forceVerbose: forceVerbose})
	f.initMu.Unlock()

	_, _ = f.DebugTag(LogTag, "Init with app tag - "+appTag)
	return nil
}

// Initialized reports whether Init succeeded at least once
func (f *Facade) Initialized() bool {
	return f.state.Load() != nil
}

// AppTag returns the application tag
func (f *Facade) AppTag() (string, error) {
	s, err := f.snapshot()
	if err != nil {
		return "", err
	}
	return s.appTag, nil
}

// ForceVerbose reports whether every priority is admitted regardless of overrides
func (f *Facade) ForceVerbose() (bool, error) {
	s, err := f.snapshot()
	if err != nil {
		return false, err
	}
	return s.forceVerbose, nil
}

// IsLoggable reports whether a message at priority would be emitted.
// SUPPRESS is not a message priority and fails with errs.ErrInvalidPriority.
func (f *Facade) IsLoggable(priority entity.Priority) (bool, error) {
	s, err := f.snapshotFor(priority)
	if err != nil {
		return false, err
	}
	return f.admits(s, priority), nil
}

// IsDebug is IsLoggable(entity.Debug)
func (f *Facade) IsDebug() (bool, error) {
	return f.IsLoggable(entity.Debug)
}

// Minimum returns the lowest priority currently admitted for the application
// tag, entity.Suppress when nothing is
func (f *Facade) Minimum() (entity.Priority, error) {
	s, err := f.snapshot()
	if err != nil {
		return entity.Suppress, err
	}
	if s.forceVerbose {
		return entity.Verbose, nil
	}
	return f.minimum(s.appTag), nil
}

func (f *Facade) snapshot() (*state, error) {
	s := f.state.Load()
	if s == nil {
		return nil, errs.ErrNotInitialized
	}
	return s, nil
}

// snapshotFor is snapshot for an operation at priority, which must be a
// message priority
func (f *Facade) snapshotFor(priority entity.Priority) (*state, error) {
	s, err := f.snapshot()
	if err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		value := priority.String()
		if priority != entity.Suppress {
			value = strconv.Itoa(int(priority))
		}
		return nil, &errs.PriorityError{Value: value}
	}
	return s, nil
}

func (f *Facade) admits(s *state, priority entity.Priority) bool {
	if s.forceVerbose {
		return true
	}
	return f.minimum(s.appTag).Admits(priority)
}

func (f *Facade) minimum(appTag string) entity.Priority {
	if f.overrides == nil {
		return entity.DefaultMinimum
	}
	if p, ok := f.overrides.Lookup(appTag); ok {
		return p
	}
	return entity.DefaultMinimum
}
