package logcat_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logcat"
)

type line struct {
	priority logcat.Priority
	appTag   string
	msg      string
}

type recorder struct {
	mu    sync.Mutex
	lines []line
}

func (r *recorder) Println(priority logcat.Priority, tag, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line{priority, tag, msg})
	return len(msg)
}

func (r *recorder) last(t *testing.T) line {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.lines, "no line was emitted")
	return r.lines[len(r.lines)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// useRecorder installs a runtime facade writing to a recorder as the default
func useRecorder(t *testing.T, overrides logcat.OverrideSource) *recorder {
	t.Helper()
	rec := &recorder{}
	logcat.SetDefault(logcat.NewRuntime(rec, overrides))
	t.Cleanup(func() { logcat.SetDefault(nil) })
	return rec
}

var frameForm = regexp.MustCompile(`^\S+\((\S+:\d+|Unknown Source)\)$`)

func TestPrintStack(t *testing.T) {
	rec := useRecorder(t, nil)
	require.NoError(t, logcat.InitVerbose("xLogLib", true))

	n, err := logcat.PrintStack(logcat.PriorityError)
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, logcat.PriorityError, got.priority)
	assert.Equal(t, "xLogLib", got.appTag)
	assert.Equal(t, len(got.msg), n)

	frames := strings.Split(strings.TrimSuffix(got.msg, "\n"), "\n")
	require.NotEmpty(t, frames)
	for _, frame := range frames {
		assert.Regexp(t, frameForm, frame)
	}
	assert.True(t, strings.HasPrefix(frames[0], "github.com/amirhossein-jamali/logcat_test.TestPrintStack("), frames[0])

	t.Run("Capture frames are dropped", func(t *testing.T) {
		for _, prefix := range logcat.FramePrefixes() {
			for _, frame := range frames {
				assert.False(t, strings.HasPrefix(frame, prefix), frame)
			}
		}
	})
}

func TestPackageFunctions(t *testing.T) {
	t.Run("Uninitialized", func(t *testing.T) {
		useRecorder(t, nil)
		assert.False(t, logcat.Initialized())

		_, err := logcat.Info("x")
		assert.ErrorIs(t, err, logcat.ErrNotInitialized)
	})

	t.Run("Default minimum is INFO", func(t *testing.T) {
		rec := useRecorder(t, nil)
		require.NoError(t, logcat.Init("  xLogLib "))

		n, err := logcat.DebugTag("Comp", "hi")
		require.NoError(t, err)
		assert.Equal(t, logcat.Denied, n)
		assert.Zero(t, rec.count())

		_, err = logcat.Infof("Comp", "%d %s", 2, "items")
		require.NoError(t, err)
		assert.Equal(t, line{logcat.PriorityInfo, "xLogLib", "Comp: 2 items"}, rec.last(t))

		minimum, err := logcat.Minimum()
		require.NoError(t, err)
		assert.Equal(t, logcat.PriorityInfo, minimum)
	})

	t.Run("Override source", func(t *testing.T) {
		source := overrideFunc(func(tag string) (logcat.Priority, bool) {
			return logcat.PriorityError, tag == "xLogLib"
		})
		useRecorder(t, source)
		require.NoError(t, logcat.Init("xLogLib"))

		ok, err := logcat.IsLoggable(logcat.PriorityWarn)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = logcat.IsLoggable(logcat.PriorityAssert)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Obfuscation", func(t *testing.T) {
		rec := useRecorder(t, nil)
		require.NoError(t, logcat.InitVerbose("xLogLib", true))
		logcat.SetObfuscator(logcat.SimpleNumberObfuscator{})
		logcat.SetObfuscateByDefault(true)

		_, err := logcat.DebugTag("C", "+7123")
		require.NoError(t, err)
		assert.Equal(t, "C: +****", rec.last(t).msg)

		_, err = logcat.DebugObfuscate("C", "+7123", false)
		require.NoError(t, err)
		assert.Equal(t, "C: +7123", rec.last(t).msg)
	})

	t.Run("Invalid format", func(t *testing.T) {
		useRecorder(t, nil)
		require.NoError(t, logcat.Init("xLogLib"))

		_, err := logcat.Errorf("Comp", "%d", "three")
		assert.ErrorIs(t, err, logcat.ErrInvalidFormat)
	})
}

type overrideFunc func(tag string) (logcat.Priority, bool)

func (f overrideFunc) Lookup(tag string) (logcat.Priority, bool) { return f(tag) }

func TestPrintGoroutines(t *testing.T) {
	rec := useRecorder(t, nil)
	require.NoError(t, logcat.InitVerbose("xLogLib", true))

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-stop
		}()
	}
	t.Cleanup(func() {
		close(stop)
		wg.Wait()
	})
	time.Sleep(10 * time.Millisecond)

	_, err := logcat.PrintThreads("Threads", logcat.PriorityVerbose, logcat.ProcessGroup())
	require.NoError(t, err)

	got := rec.last(t)
	assert.Equal(t, logcat.PriorityVerbose, got.priority)
	require.True(t, strings.HasPrefix(got.msg, "Threads: \n"), got.msg)
	for _, entry := range strings.Split(strings.TrimPrefix(got.msg, "Threads: \n"), "\n") {
		assert.True(t, strings.HasPrefix(entry, "Goroutine["), entry)
	}

	_, err = logcat.PrintGoroutines(logcat.PriorityDebug)
	require.NoError(t, err)
	assert.Equal(t, logcat.PriorityDebug, rec.last(t).priority)
}

func TestPrintMemoryInfo(t *testing.T) {
	rec := useRecorder(t, nil)
	require.NoError(t, logcat.Init("xLogLib"))

	n, err := logcat.PrintMemoryInfo(logcat.PriorityDebug)
	require.NoError(t, err)
	assert.Equal(t, logcat.Denied, n)

	n, err = logcat.PrintMemoryInfo(logcat.PriorityWarn)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, logcat.PriorityWarn, rec.last(t).priority)
}

func TestDefault(t *testing.T) {
	logcat.SetDefault(nil)
	first := logcat.Default()
	require.NotNil(t, first)
	assert.Same(t, first, logcat.Default())

	custom := logcat.New(logcat.Options{LineLogger: &recorder{}})
	logcat.SetDefault(custom)
	t.Cleanup(func() { logcat.SetDefault(nil) })
	assert.Same(t, custom, logcat.Default())
}

func TestParsePriority(t *testing.T) {
	testCases := []struct {
		input    string
		expected logcat.Priority
	}{
		{"DEBUG", logcat.PriorityDebug},
		{"w", logcat.PriorityWarn},
		{"SUPPRESS", logcat.PrioritySuppress},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			p, err := logcat.ParsePriority(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}

	_, err := logcat.ParsePriority("LOUD")
	assert.ErrorIs(t, err, logcat.ErrInvalidPriority)

	var parseErr *logcat.PriorityParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "LOUD", parseErr.Value)
	assert.Equal(t, logcat.PriorityError, logcat.Priority(6))
}
