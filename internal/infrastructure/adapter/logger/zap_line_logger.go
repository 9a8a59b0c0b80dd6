package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
	timeadapter "github.com/amirhossein-jamali/logcat/internal/infrastructure/adapter/time"
)

// Format selects the line encoding
type Format string

const (
	// FormatConsole writes "[time ]P/AppTag: message" lines
	FormatConsole Format = "console"
	// FormatJSON writes one {"timestamp","priority","tag","message"} object per line
	FormatJSON Format = "json"
)

// Colorize selects when priority letters are colored
type Colorize string

const (
	ColorizeAuto   Colorize = "auto"
	ColorizeAlways Colorize = "always"
	ColorizeNever  Colorize = "never"
)

// VerboseLevel is the zap level VERBOSE lines are written at, one below DEBUG
const VerboseLevel = zapcore.DebugLevel - 1

// Options configures a ZapLineLogger
type Options struct {
	Format Format
	// Outputs are zap.Open paths: "stdout", "stderr" or files. Defaults to stderr.
	Outputs []string
	// Writer, when set, replaces Outputs
	Writer io.Writer
	// WithTime prefixes each line with its timestamp
	WithTime bool
	Colorize Colorize
	// Clock stamps the lines, the real clock when nil
	Clock core.TimeProvider
}

// ZapLineLogger implements the LineLogger interface on a zap encoder and write syncer
type ZapLineLogger struct {
	encoder zapcore.Encoder
	out     zapcore.WriteSyncer
	closeFn func()
	clock   core.TimeProvider
	json    bool
}

// NewZapLineLogger creates a line logger writing to the configured outputs
func NewZapLineLogger(opts Options) (*ZapLineLogger, error) {
	if opts.Format == "" {
		opts.Format = FormatConsole
	}
	if opts.Format != FormatConsole && opts.Format != FormatJSON {
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}
	if opts.Clock == nil {
		opts.Clock = timeadapter.NewRealTimeProvider()
	}

	var (
		out     zapcore.WriteSyncer
		closeFn = func() {}
		colored bool
	)
	if opts.Writer != nil {
		out = zapcore.AddSync(opts.Writer)
		colored = opts.Colorize == ColorizeAlways
	} else {
		if len(opts.Outputs) == 0 {
			opts.Outputs = []string{"stderr"}
		}
		ws, closer, err := zap.Open(opts.Outputs...)
		if err != nil {
			return nil, fmt.Errorf("failed to open log outputs: %w", err)
		}
		out, closeFn = ws, closer
		colored = shouldColorize(opts.Colorize, opts.Outputs)
	}

	l := &ZapLineLogger{
		out:     zapcore.Lock(out),
		closeFn: closeFn,
		clock:   opts.Clock,
		json:    opts.Format == FormatJSON,
	}
	if l.json {
		l.encoder = zapcore.NewJSONEncoder(jsonEncoderConfig(opts.WithTime))
	} else {
		l.encoder = zapcore.NewConsoleEncoder(consoleEncoderConfig(opts.WithTime, colored))
	}
	return l, nil
}

// NewDefaultLineLogger creates the console line logger on stderr
func NewDefaultLineLogger() *ZapLineLogger {
	l, err := NewZapLineLogger(Options{Format: FormatConsole, Colorize: ColorizeAuto})
	if err != nil {
		panic("failed to initialize line logger: " + err.Error())
	}
	return l
}

// Println writes one line and returns the bytes written, -1 when the encoder
// or the output failed
func (l *ZapLineLogger) Println(priority entity.Priority, tag, msg string) int {
	name := tag
	if !l.json {
		name = priority.Letter() + "/" + tag
	}

	entry := zapcore.Entry{
		Level:      ZapLevel(priority),
		Time:       l.clock.Now(),
		LoggerName: name,
		Message:    msg,
	}

	buf, err := l.encoder.EncodeEntry(entry, nil)
	if err != nil {
		return -1
	}
	defer buf.Free()

	n, err := l.out.Write(buf.Bytes())
	if err != nil {
		return -1
	}
	return n
}

// Sync flushes buffered output
func (l *ZapLineLogger) Sync() error {
	return l.out.Sync()
}

// Close flushes and closes the opened outputs
func (l *ZapLineLogger) Close() error {
	err := l.out.Sync()
	l.closeFn()
	return err
}

// ZapLevel maps a priority to the zap level it is written at
func ZapLevel(priority entity.Priority) zapcore.Level {
	switch priority {
	case entity.Verbose:
		return VerboseLevel
	case entity.Debug:
		return zapcore.DebugLevel
	case entity.Info:
		return zapcore.InfoLevel
	case entity.Warn:
		return zapcore.WarnLevel
	case entity.Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

// PriorityOf maps a zap level back to a priority
func PriorityOf(level zapcore.Level) entity.Priority {
	switch {
	case level <= VerboseLevel:
		return entity.Verbose
	case level == zapcore.DebugLevel:
		return entity.Debug
	case level == zapcore.InfoLevel:
		return entity.Info
	case level == zapcore.WarnLevel:
		return entity.Warn
	case level == zapcore.ErrorLevel:
		return entity.Error
	default:
		return entity.Assert
	}
}

func letterLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(PriorityOf(level).Letter())
}

func jsonEncoderConfig(withTime bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		LevelKey:       "priority",
		NameKey:        "tag",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    letterLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if withTime {
		cfg.TimeKey = "timestamp"
	}
	return cfg
}

// consoleEncoderConfig renders the priority and tag through the name
// element so the line reads "P/AppTag: message"
func consoleEncoderConfig(withTime, colored bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		NameKey:          "tag",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       newNameEncoder(colored),
		ConsoleSeparator: " ",
	}
	if withTime {
		cfg.TimeKey = "timestamp"
	}
	return cfg
}

var letterColors = map[string]color.Attribute{
	"V": color.FgWhite,
	"D": color.FgCyan,
	"I": color.FgGreen,
	"W": color.FgYellow,
	"E": color.FgRed,
	"A": color.FgMagenta,
}

func newNameEncoder(colored bool) zapcore.NameEncoder {
	paint := make(map[string]func(a ...interface{}) string, len(letterColors))
	for letter, attr := range letterColors {
		c := color.New(attr, color.Bold)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		paint[letter] = c.SprintFunc()
	}

	return func(name string, enc zapcore.PrimitiveArrayEncoder) {
		letter, tag, found := strings.Cut(name, "/")
		if sprint, ok := paint[letter]; ok && found {
			enc.AppendString(sprint(letter) + "/" + tag + ":")
			return
		}
		enc.AppendString(name + ":")
	}
}

func shouldColorize(mode Colorize, outputs []string) bool {
	switch mode {
	case ColorizeAlways:
		return true
	case ColorizeNever:
		return false
	}
	if len(outputs) != 1 {
		return false
	}
	switch outputs[0] {
	case "stderr":
		return isTerminal(os.Stderr.Fd())
	case "stdout":
		return isTerminal(os.Stdout.Fd())
	default:
		return false
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
