package introspection

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/logcat/mocks/port/core"
)

const sampleDump = `goroutine 1 [running]:
main.main()
	/src/app/main.go:20 +0x1d

goroutine 18 [sleep, 2 minutes]:
time.Sleep(0x3b9aca00)
	/usr/local/go/src/runtime/time.go:300 +0xf2
main.worker(0x1)
	/src/app/worker.go:9 +0x25
created by main.main in goroutine 1
	/src/app/main.go:12 +0x3a

goroutine 19 [chan receive]:
main.(*pool).wait(0xc000010000)
	/src/app/pool.go:31 +0x44
created by main.worker in goroutine 18
	/src/app/worker.go:7 +0x51

goroutine 7 [select, locked to thread]:
runtime.ensureSigM.func1()
	/usr/local/go/src/runtime/signal_unix.go:1060 +0x17f
...additional frames elided...
created by runtime.ensureSigM in goroutine 1
	/usr/local/go/src/runtime/signal_unix.go:1043 +0x45
`

func TestParseDump(t *testing.T) {
	records, err := parseDump([]byte(sampleDump))
	require.NoError(t, err)
	require.Len(t, records, 4)

	main := records[0]
	assert.Equal(t, uint64(1), main.id)
	assert.Equal(t, "running", main.state)
	assert.Equal(t, []entity.Frame{{Function: "main.main", File: "/src/app/main.go", Line: 20}}, main.frames)
	assert.Zero(t, main.parentID)

	worker := records[1]
	assert.Equal(t, uint64(18), worker.id)
	assert.Equal(t, "sleep", worker.state)
	assert.Equal(t, uint64(1), worker.parentID)
	assert.Equal(t, "main.main", worker.createdBy)
	require.Len(t, worker.frames, 2)
	assert.Equal(t, "time.Sleep", worker.frames[0].Function)
	assert.Equal(t, entity.Frame{Function: "main.worker", File: "/src/app/worker.go", Line: 9}, worker.frames[1])

	assert.Equal(t, "main.(*pool).wait", records[2].frames[0].Function)
	assert.Equal(t, uint64(18), records[2].parentID)

	assert.Equal(t, "select", records[3].state)
	assert.Len(t, records[3].frames, 1)
}

func TestParseDumpWithoutGoroutines(t *testing.T) {
	records, err := parseDump(nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSplitCreator(t *testing.T) {
	testCases := []struct {
		creator  string
		function string
		parent   uint64
	}{
		{"main.main in goroutine 1", "main.main", 1},
		{"net/http.(*Server).Serve in goroutine 34", "net/http.(*Server).Serve", 34},
		{"main.main", "main.main", 0},
		{"main.main in goroutine x", "main.main", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.creator, func(t *testing.T) {
			function, parent := splitCreator(tc.creator)
			assert.Equal(t, tc.function, function)
			assert.Equal(t, tc.parent, parent)
		})
	}
}

func TestGoroutineEnumerator(t *testing.T) {
	e := &GoroutineEnumerator{dump: func() []byte { return []byte(sampleDump) }}

	t.Run("Process group lists everything", func(t *testing.T) {
		threads, err := e.Enumerate(entity.ProcessGroup())
		require.NoError(t, err)
		require.Len(t, threads, 4)
		assert.Equal(t, "Goroutine[18,sleep,time.Sleep]", threads[1].String())
	})

	t.Run("Subtree of a goroutine", func(t *testing.T) {
		group := entity.ThreadGroup{Name: "worker", Root: 18}
		threads, err := e.Enumerate(group)
		require.NoError(t, err)

		ids := make([]uint64, 0, len(threads))
		for _, th := range threads {
			ids = append(ids, th.ID)
		}
		assert.Equal(t, []uint64{18, 19}, ids)
		assert.Equal(t, 2, e.ActiveCount(group))
	})

	t.Run("Default group", func(t *testing.T) {
		assert.True(t, e.GroupOf(entity.Goroutine{ID: 19}).IsProcessGroup())
	})
}

func TestGoroutineEnumerator_Live(t *testing.T) {
	e := NewGoroutineEnumerator()

	release := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
		}()
	}
	t.Cleanup(func() {
		close(release)
		wg.Wait()
	})

	threads, err := e.Enumerate(entity.ProcessGroup())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(threads), 4)
	assert.Greater(t, e.ActiveCount(entity.ProcessGroup()), 0)
}

func TestStackCapturer(t *testing.T) {
	c := NewStackCapturer()

	t.Run("Current goroutine has an id", func(t *testing.T) {
		assert.NotZero(t, c.Current().ID)
	})

	t.Run("Own stack starts at the caller", func(t *testing.T) {
		frames, err := c.Capture(c.Current())
		require.NoError(t, err)
		require.NotEmpty(t, frames)
		assert.Contains(t, frames[0].Function, "TestStackCapturer")
		assert.NotEmpty(t, frames[0].File)
		for _, f := range frames {
			assert.False(t, strings.HasPrefix(f.Function, FramePrefix()+"(*StackCapturer)"), f.Function)
		}
	})

	t.Run("Another goroutine", func(t *testing.T) {
		ids := make(chan entity.Goroutine)
		release := make(chan struct{})
		go func() {
			ids <- c.Current()
			<-release
		}()
		g := <-ids
		defer close(release)

		frames, err := c.Capture(g)
		require.NoError(t, err)
		assert.NotEmpty(t, frames)
	})

	t.Run("Unknown goroutine", func(t *testing.T) {
		_, err := c.Capture(entity.Goroutine{ID: 1 << 62})
		assert.Error(t, err)
	})
}

func TestProcMemoryReporter(t *testing.T) {
	t.Run("Copies the head of the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "meminfo")
		content := strings.Repeat("MemTotal:       16318412 kB\n", 100)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		sink := mockcore.NewMockLineLogger(t)
		sink.EXPECT().Println(entity.Info, "xLogLib", content[:2048]).Return(2048).Once()

		r := &ProcMemoryReporter{Path: path}
		assert.Equal(t, 2048, r.Report(sink, entity.Info, "xLogLib"))
	})

	t.Run("Short file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "meminfo")
		require.NoError(t, os.WriteFile(path, []byte("MemFree: 1 kB\n"), 0o600))

		sink := mockcore.NewMockLineLogger(t)
		sink.EXPECT().Println(entity.Debug, "xLogLib", "MemFree: 1 kB\n").Return(14).Once()

		r := &ProcMemoryReporter{Path: path}
		assert.Equal(t, 14, r.Report(sink, entity.Debug, "xLogLib"))
	})

	t.Run("Missing file reports at ERROR", func(t *testing.T) {
		sink := mockcore.NewMockLineLogger(t)
		sink.EXPECT().Println(entity.Error, "xLogLib", "Error when opening meminfo file").Return(31).Once()

		r := &ProcMemoryReporter{Path: filepath.Join(t.TempDir(), "absent")}
		assert.Equal(t, 31, r.Report(sink, entity.Info, "xLogLib"))
	})
}

func TestRuntimeMemoryReporter(t *testing.T) {
	var got string
	sink := core.LineLoggerFunc(func(priority entity.Priority, tag, msg string) int {
		assert.Equal(t, entity.Warn, priority)
		assert.Equal(t, "xLogLib", tag)
		got = msg
		return len(msg)
	})

	n := NewRuntimeMemoryReporter().Report(sink, entity.Warn, "xLogLib")
	assert.Equal(t, len(got), n)
	assert.Contains(t, got, "HeapAlloc:")
	assert.Contains(t, got, "Goroutines:")
}

func TestNewMemoryReporter(t *testing.T) {
	r, err := NewMemoryReporter("proc")
	require.NoError(t, err)
	assert.IsType(t, &ProcMemoryReporter{}, r)

	r, err = NewMemoryReporter("runtime")
	require.NoError(t, err)
	assert.IsType(t, &RuntimeMemoryReporter{}, r)

	r, err = NewMemoryReporter("auto")
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = NewMemoryReporter("jvm")
	assert.Error(t, err)
}
