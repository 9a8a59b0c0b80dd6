package logcat

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	"github.com/amirhossein-jamali/logcat/internal/domain/usecase/facade"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/introspection"
	"github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/logger"
)

type (
	// Facade is a logging façade instance
	Facade = facade.Facade
	// Options holds the collaborators of a Facade
	Options = facade.Options
	// Obfuscation is a per-call obfuscation decision
	Obfuscation = facade.Obfuscation
	// SimpleNumberObfuscator masks every decimal digit
	SimpleNumberObfuscator = facade.SimpleNumberObfuscator

	Priority    = entity.Priority
	Goroutine   = entity.Goroutine
	Frame       = entity.Frame
	ThreadInfo  = entity.ThreadInfo
	ThreadGroup = entity.ThreadGroup

	LineLogger       = coreport.LineLogger
	LineLoggerFunc   = coreport.LineLoggerFunc
	Obfuscator       = coreport.Obfuscator
	ObfuscatorFunc   = coreport.ObfuscatorFunc
	OverrideSource   = coreport.OverrideSource
	StackCapturer    = coreport.StackCapturer
	ThreadEnumerator = coreport.ThreadEnumerator
	MemoryReporter   = coreport.MemoryReporter

	TagError           = errs.TagError
	FormatError        = errs.FormatError
	PriorityParseError = errs.PriorityError
)

// Priorities, with the numeric values of the Android native log priorities
const (
	PriorityVerbose  = entity.Verbose
	PriorityDebug    = entity.Debug
	PriorityInfo     = entity.Info
	PriorityWarn     = entity.Warn
	PriorityError    = entity.Error
	PriorityAssert   = entity.Assert
	PrioritySuppress = entity.Suppress
)

const (
	// Denied is returned instead of a byte count for a filtered message
	Denied = facade.Denied

	ObfuscateDefault = facade.ObfuscateDefault
	ObfuscateOn      = facade.ObfuscateOn
	ObfuscateOff     = facade.ObfuscateOff
)

var (
	ErrNotInitialized         = errs.ErrNotInitialized
	ErrInvalidTag             = errs.ErrInvalidTag
	ErrInvalidFormat          = errs.ErrInvalidFormat
	ErrInvalidPriority        = errs.ErrInvalidPriority
	ErrOverrideNotFound       = errs.ErrOverrideNotFound
	ErrDiagnosticsUnavailable = errs.ErrDiagnosticsUnavailable
)

// New creates an uninitialized Facade. It panics when opts.LineLogger is nil.
func New(opts Options) *Facade {
	return facade.New(opts)
}

// NewRuntime creates a Facade writing to sink, with stack, goroutine and
// memory introspection backed by the Go runtime
func NewRuntime(sink LineLogger, overrides OverrideSource) *Facade {
	memory, _ := introspection.NewMemoryReporter("auto")
	return facade.New(facade.Options{
		LineLogger:    sink,
		Overrides:     overrides,
		Stacks:        introspection.NewStackCapturer(),
		Threads:       introspection.NewGoroutineEnumerator(),
		Memory:        memory,
		FramePrefixes: FramePrefixes(),
	})
}

// FramePrefixes returns the function prefixes of the capture machinery
// outside the façade, for Options.FramePrefixes.
//
// Stack dumps drop the leading frames that match these prefixes, so the
// first line is the caller of PrintStack or PrintCurrentStackTrace. The
// capture frames never appear in the output, and callers that count frames
// from the top should not skip any.
func FramePrefixes() []string {
	return []string{introspection.FramePrefix(), framePrefix()}
}

func framePrefix() string {
	pc, _, _, _ := runtime.Caller(0)
	return strings.TrimSuffix(runtime.FuncForPC(pc).Name(), "framePrefix")
}

var (
	defaultMu     sync.Mutex
	defaultFacade atomic.Pointer[Facade]
)

// Default returns the process-default Facade. Unless SetDefault installed
// another one, it writes console lines to stderr through zap.
func Default() *Facade {
	if f := defaultFacade.Load(); f != nil {
		return f
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if f := defaultFacade.Load(); f != nil {
		return f
	}
	f := NewRuntime(logger.NewDefaultLineLogger(), nil)
	defaultFacade.Store(f)
	return f
}

// SetDefault makes f the process-default Facade. A nil f restores the
// lazily built one.
func SetDefault(f *Facade) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFacade.Store(f)
}

// ParsePriority parses a level name or letter, SUPPRESS included
func ParsePriority(s string) (Priority, error) {
	return entity.ParsePriority(s)
}

// ProcessGroup is the group holding every goroutine
func ProcessGroup() ThreadGroup {
	return entity.ProcessGroup()
}

// StackTraceString renders err followed by the frames of the deepest
// stack trace it carries, "" for nil
func StackTraceString(err error) string {
	return facade.StackTraceString(err)
}

// Init initializes the default Facade with tag
func Init(tag string) error {
	return Default().Init(tag)
}

// InitVerbose initializes the default Facade; forceVerbose admits every priority
func InitVerbose(tag string, forceVerbose bool) error {
	return Default().InitVerbose(tag, forceVerbose)
}

// Initialized reports whether the default Facade has been initialized
func Initialized() bool {
	return Default().Initialized()
}

// AppTag returns the application tag
func AppTag() (string, error) {
	return Default().AppTag()
}

// IsLoggable reports whether a message at priority would be emitted
func IsLoggable(priority Priority) (bool, error) {
	return Default().IsLoggable(priority)
}

// IsDebug reports whether DEBUG messages are emitted
func IsDebug() (bool, error) {
	return Default().IsDebug()
}

// SetObfuscator installs o, nil removes it
func SetObfuscator(o Obfuscator) {
	Default().SetObfuscator(o)
}

// SetObfuscateByDefault sets whether messages are obfuscated unless a call says otherwise
func SetObfuscateByDefault(obfuscate bool) {
	Default().SetObfuscateByDefault(obfuscate)
}

// PrintStack dumps the calling goroutine's stack at priority
func PrintStack(priority Priority) (int, error) {
	return Default().PrintCurrentStackTrace("", priority)
}

// PrintCurrentStackTrace dumps the calling goroutine's stack under tag at priority
func PrintCurrentStackTrace(tag string, priority Priority) (int, error) {
	return Default().PrintCurrentStackTrace(tag, priority)
}

// PrintStackTrace dumps the stack of g under tag at priority
func PrintStackTrace(tag string, priority Priority, g *Goroutine) (int, error) {
	return Default().PrintStackTrace(tag, priority, g)
}

// PrintGoroutines lists the goroutines of the caller's group at priority
func PrintGoroutines(priority Priority) (int, error) {
	return Default().PrintCurrentThreads("", priority)
}

// PrintCurrentThreads lists the goroutines of the caller's group under tag at priority
func PrintCurrentThreads(tag string, priority Priority) (int, error) {
	return Default().PrintCurrentThreads(tag, priority)
}

// PrintThreads lists the goroutines of group under tag at priority
func PrintThreads(tag string, priority Priority, group ThreadGroup) (int, error) {
	return Default().PrintThreads(tag, priority, group)
}

// PrintMemoryInfo emits a memory snapshot at priority
func PrintMemoryInfo(priority Priority) (int, error) {
	return Default().PrintMemoryInfo(priority)
}

// ForceVerbose reports whether every priority is admitted
func ForceVerbose() (bool, error) {
	return Default().ForceVerbose()
}

// Minimum returns the lowest admitted priority
func Minimum() (Priority, error) {
	return Default().Minimum()
}
