package facade

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/logcat/mocks/port/core"
)

type recordedLine struct {
	priority entity.Priority
	appTag   string
	msg      string
}

// recorder is a LineLogger that keeps every line it receives
type recorder struct {
	mu    sync.Mutex
	lines []recordedLine
}

func (r *recorder) Println(priority entity.Priority, tag, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, recordedLine{priority: priority, appTag: tag, msg: msg})
	return len(msg)
}

func (r *recorder) all() []recordedLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedLine(nil), r.lines...)
}

func (r *recorder) last(t *testing.T) recordedLine {
	t.Helper()
	lines := r.all()
	require.NotEmpty(t, lines, "no line was emitted")
	return lines[len(lines)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

func newRecorded(t *testing.T) (*Facade, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(Options{LineLogger: rec}), rec
}

func TestNew(t *testing.T) {
	t.Run("Nil line logger should panic", func(t *testing.T) {
		assert.Panics(t, func() {
			New(Options{})
		})
	})

	t.Run("Starts uninitialized", func(t *testing.T) {
		f, _ := newRecorded(t)
		assert.False(t, f.Initialized())
	})
}

func TestInitGate(t *testing.T) {
	f, rec := newRecorded(t)
	g := entity.Goroutine{ID: 1}

	operations := map[string]func() error{
		"AppTag":          func() error { _, err := f.AppTag(); return err },
		"ForceVerbose":    func() error { _, err := f.ForceVerbose(); return err },
		"IsLoggable":      func() error { _, err := f.IsLoggable(entity.Info); return err },
		"IsDebug":         func() error { _, err := f.IsDebug(); return err },
		"Minimum":         func() error { _, err := f.Minimum(); return err },
		"Println":         func() error { _, err := f.Println(entity.Assert, "T", "m"); return err },
		"Verbose":         func() error { _, err := f.Verbose("m"); return err },
		"DebugTag":        func() error { _, err := f.DebugTag("T", "m"); return err },
		"Infof":           func() error { _, err := f.Infof("T", "%d", 1); return err },
		"WarnCause":       func() error { _, err := f.WarnCause(assert.AnError); return err },
		"ErrorTagErr":     func() error { _, err := f.ErrorTagErr("T", "m", assert.AnError); return err },
		"DebugObfuscate":  func() error { _, err := f.DebugObfuscate("T", "m", true); return err },
		"PrintStackTrace": func() error { _, err := f.PrintStackTrace("T", entity.Error, &g); return err },
		"PrintNilStack":   func() error { _, err := f.PrintStackTrace("T", entity.Error, nil); return err },
		"PrintThreads":    func() error { _, err := f.PrintThreads("T", entity.Debug, entity.ProcessGroup()); return err },
		"PrintMemoryInfo": func() error { _, err := f.PrintMemoryInfo(entity.Info); return err },
	}

	for name, op := range operations {
		t.Run(name+" before init", func(t *testing.T) {
			assert.ErrorIs(t, op(), errs.ErrNotInitialized)
		})
	}
	assert.Empty(t, rec.all())

	require.NoError(t, f.InitVerbose("xLogLib", true))
	for name, op := range operations {
		t.Run(name+" after init", func(t *testing.T) {
			assert.False(t, errs.IsNotInitializedError(op()))
		})
	}
}

func TestInitTagRules(t *testing.T) {
	testCases := []struct {
		name  string
		tag   string
		valid bool
	}{
		{"Empty", "", false},
		{"Blank", "   ", false},
		{"Too long", strings.Repeat("x", 24), false},
		{"Too long after trim", "  " + strings.Repeat("x", 30) + "  ", false},
		{"Single byte", "x", true},
		{"Maximum length", strings.Repeat("x", 23), true},
		{"Padded", "  xLogLib ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newRecorded(t)
			err := f.Init(tc.tag)
			if !tc.valid {
				assert.ErrorIs(t, err, errs.ErrInvalidTag)
				assert.False(t, f.Initialized())
				return
			}
			require.NoError(t, err)
			appTag, err := f.AppTag()
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.tag), appTag)
		})
	}
}

func TestInitAnnounce(t *testing.T) {
	t.Run("Emitted at DEBUG when admitted", func(t *testing.T) {
		f, rec := newRecorded(t)
		require.NoError(t, f.InitVerbose("  xLogLib ", true))

		line := rec.last(t)
		assert.Equal(t, entity.Debug, line.priority)
		assert.Equal(t, "xLogLib", line.appTag)
		assert.Equal(t, "LogCat: Init with app tag - xLogLib", line.msg)
	})

	t.Run("Gated like any other message", func(t *testing.T) {
		sink := mockcore.NewMockLineLogger(t)
		f := New(Options{LineLogger: sink})
		require.NoError(t, f.Init("  xLogLib "))
		// no expectation on sink: the DEBUG announce must be denied
	})
}

func TestReinit(t *testing.T) {
	f, rec := newRecorded(t)
	require.NoError(t, f.InitVerbose("first", true))

	t.Run("Replaces tag and flag", func(t *testing.T) {
		require.NoError(t, f.Init("second"))
		appTag, err := f.AppTag()
		require.NoError(t, err)
		assert.Equal(t, "second", appTag)

		ok, err := f.IsDebug()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Failed init keeps previous state", func(t *testing.T) {
		rec.reset()
		assert.ErrorIs(t, f.Init(""), errs.ErrInvalidTag)

		appTag, err := f.AppTag()
		require.NoError(t, err)
		assert.Equal(t, "second", appTag)
		assert.Empty(t, rec.all())
	})
}

func TestForceVerboseDominance(t *testing.T) {
	overrides := mockcore.NewMockOverrideSource(t)
	f := New(Options{LineLogger: &recorder{}, Overrides: overrides})
	require.NoError(t, f.InitVerbose("xLogLib", true))

	// force-verbose never consults the override source
	for _, p := range entity.Priorities() {
		ok, err := f.IsLoggable(p)
		require.NoError(t, err)
		assert.True(t, ok, p.String())
	}

	minimum, err := f.Minimum()
	require.NoError(t, err)
	assert.Equal(t, entity.Verbose, minimum)
}

func TestDefaultMinimum(t *testing.T) {
	f, _ := newRecorded(t)
	require.NoError(t, f.Init("xLogLib"))

	expected := map[entity.Priority]bool{
		entity.Verbose: false,
		entity.Debug:   false,
		entity.Info:    true,
		entity.Warn:    true,
		entity.Error:   true,
		entity.Assert:  true,
	}
	for p, want := range expected {
		ok, err := f.IsLoggable(p)
		require.NoError(t, err)
		assert.Equal(t, want, ok, p.String())
	}

	debug, err := f.IsDebug()
	require.NoError(t, err)
	assert.False(t, debug)
}

func TestOverrides(t *testing.T) {
	testCases := []struct {
		name     string
		override entity.Priority
		found    bool
		admitted []entity.Priority
		denied   []entity.Priority
	}{
		{
			name:     "No entry",
			found:    false,
			admitted: []entity.Priority{entity.Info, entity.Assert},
			denied:   []entity.Priority{entity.Verbose, entity.Debug},
		},
		{
			name:     "Verbose entry",
			override: entity.Verbose,
			found:    true,
			admitted: entity.Priorities(),
		},
		{
			name:     "Error entry",
			override: entity.Error,
			found:    true,
			admitted: []entity.Priority{entity.Error, entity.Assert},
			denied:   []entity.Priority{entity.Verbose, entity.Debug, entity.Info, entity.Warn},
		},
		{
			name:     "Suppress entry",
			override: entity.Suppress,
			found:    true,
			denied:   entity.Priorities(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			overrides := mockcore.NewMockOverrideSource(t)
			overrides.EXPECT().Lookup("xLogLib").Return(tc.override, tc.found)

			f := New(Options{LineLogger: &recorder{}, Overrides: overrides})
			require.NoError(t, f.Init("xLogLib"))

			for _, p := range tc.admitted {
				ok, err := f.IsLoggable(p)
				require.NoError(t, err)
				assert.True(t, ok, p.String())
			}
			for _, p := range tc.denied {
				ok, err := f.IsLoggable(p)
				require.NoError(t, err)
				assert.False(t, ok, p.String())
			}
		})
	}
}

func TestNonMessagePriority(t *testing.T) {
	f, rec := newRecorded(t)
	require.NoError(t, f.InitVerbose("xLogLib", true))
	rec.reset()

	testCases := []struct {
		name     string
		priority entity.Priority
		value    string
	}{
		{"Suppress", entity.Suppress, "SUPPRESS"},
		{"Below verbose", entity.Priority(0), "0"},
		{"Above assert", entity.Priority(42), "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			operations := map[string]func() error{
				"Println":      func() error { _, err := f.Println(tc.priority, "Tag", "msg"); return err },
				"IsLoggable":   func() error { _, err := f.IsLoggable(tc.priority); return err },
				"StackTrace":   func() error { _, err := f.PrintCurrentStackTrace("Tag", tc.priority); return err },
				"NilGoroutine": func() error { _, err := f.PrintStackTrace("Tag", tc.priority, nil); return err },
				"Threads":      func() error { _, err := f.PrintCurrentThreads("Tag", tc.priority); return err },
				"MemoryInfo":   func() error { _, err := f.PrintMemoryInfo(tc.priority); return err },
			}

			for name, op := range operations {
				err := op()
				require.ErrorIs(t, err, errs.ErrInvalidPriority, name)

				var priorityErr *errs.PriorityError
				require.ErrorAs(t, err, &priorityErr, name)
				assert.Equal(t, tc.value, priorityErr.Value, name)
			}
			assert.Empty(t, rec.all())
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	f, rec := newRecorded(t)
	require.NoError(t, f.InitVerbose("xLogLib", true))
	rec.reset()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if j%10 == 0 {
					f.SetObfuscator(SimpleNumberObfuscator{})
					f.SetObfuscateByDefault(i%2 == 0)
				}
				_, err := f.Infof("worker", "line %d/%d", i, j)
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, rec.all(), 8*50)
}
