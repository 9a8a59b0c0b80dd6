package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	mockcore "github.com/amirhossein-jamali/logcat/mocks/port/core"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestZapLineLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLineLogger(Options{Format: FormatConsole, Writer: &buf, Colorize: ColorizeNever})
	require.NoError(t, err)

	testCases := []struct {
		priority entity.Priority
		expected string
	}{
		{entity.Verbose, "V/xLogLib: Comp: hi\n"},
		{entity.Debug, "D/xLogLib: Comp: hi\n"},
		{entity.Info, "I/xLogLib: Comp: hi\n"},
		{entity.Warn, "W/xLogLib: Comp: hi\n"},
		{entity.Error, "E/xLogLib: Comp: hi\n"},
		{entity.Assert, "A/xLogLib: Comp: hi\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.priority.String(), func(t *testing.T) {
			buf.Reset()
			n := l.Println(tc.priority, "xLogLib", "Comp: hi")
			assert.Equal(t, tc.expected, buf.String())
			assert.Equal(t, len(tc.expected), n)
		})
	}
}

func TestZapLineLogger_ConsoleWithTime(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(stamp)

	var buf bytes.Buffer
	l, err := NewZapLineLogger(Options{Writer: &buf, WithTime: true, Clock: clock})
	require.NoError(t, err)

	l.Println(entity.Info, "xLogLib", "hello")
	assert.Equal(t, "2024-05-01T12:30:00.000Z I/xLogLib: hello\n", buf.String())
}

func TestZapLineLogger_Colorized(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLineLogger(Options{Writer: &buf, Colorize: ColorizeAlways})
	require.NoError(t, err)

	l.Println(entity.Error, "xLogLib", "boom")
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.True(t, strings.HasSuffix(out, "/xLogLib: boom\n"), out)
}

func TestZapLineLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewZapLineLogger(Options{Format: FormatJSON, Writer: &buf, WithTime: true})
	require.NoError(t, err)

	n := l.Println(entity.Warn, "xLogLib", "Net: slow")
	assert.Equal(t, buf.Len(), n)

	var line map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "W", line["priority"])
	assert.Equal(t, "xLogLib", line["tag"])
	assert.Equal(t, "Net: slow", line["message"])
	assert.NotEmpty(t, line["timestamp"])
}

func TestZapLineLogger_Failures(t *testing.T) {
	t.Run("Unknown format", func(t *testing.T) {
		_, err := NewZapLineLogger(Options{Format: "xml"})
		assert.Error(t, err)
	})

	t.Run("Write failure returns -1", func(t *testing.T) {
		l, err := NewZapLineLogger(Options{Writer: failingWriter{}})
		require.NoError(t, err)
		assert.Equal(t, -1, l.Println(entity.Error, "xLogLib", "lost"))
	})
}

func TestZapLineLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logcat.log")
	l, err := NewZapLineLogger(Options{Outputs: []string{path}, Colorize: ColorizeAuto})
	require.NoError(t, err)

	l.Println(entity.Info, "xLogLib", "to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "I/xLogLib: to file\n", string(data))
}

func TestLevelMapping(t *testing.T) {
	for _, p := range entity.Priorities() {
		assert.Equal(t, p, PriorityOf(ZapLevel(p)), p.String())
	}
	assert.Equal(t, zapcore.DPanicLevel, ZapLevel(entity.Assert))
	assert.Equal(t, entity.Verbose, PriorityOf(zapcore.Level(-5)))
}

func TestNoopLineLogger(t *testing.T) {
	l := NewNoopLineLogger()
	assert.Equal(t, 5, l.Println(entity.Info, "xLogLib", "hello"))
	assert.NoError(t, l.Sync())
	assert.NoError(t, l.Close())
}
