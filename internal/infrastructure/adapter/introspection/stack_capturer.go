package introspection

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

const maxCallerDepth = 64

// StackCapturer implements the StackCapturer interface with the Go runtime
type StackCapturer struct{}

// NewStackCapturer creates a new runtime stack capturer
func NewStackCapturer() *StackCapturer {
	return &StackCapturer{}
}

// FramePrefix is the function name prefix of this package, for callers
// that strip capture frames from a stack
func FramePrefix() string {
	pc, _, _, _ := runtime.Caller(0)
	return strings.TrimSuffix(runtime.FuncForPC(pc).Name(), "FramePrefix")
}

// Current returns the calling goroutine
func (c *StackCapturer) Current() entity.Goroutine {
	return entity.Goroutine{ID: currentID()}
}

// Capture returns the frames of g, innermost first. The calling goroutine
// is walked with runtime.Callers, any other one is read from a full dump.
func (c *StackCapturer) Capture(g entity.Goroutine) ([]entity.Frame, error) {
	if g.ID == c.Current().ID {
		return callerFrames(2), nil
	}

	records, err := parseDump(stackDump(true))
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.id == g.ID {
			return rec.frames, nil
		}
	}
	return nil, fmt.Errorf("%s is not running", g)
}

// callerFrames walks the current stack, skipping skip frames above the caller
func callerFrames(skip int) []entity.Frame {
	pcs := make([]uintptr, maxCallerDepth)
	for {
		n := runtime.Callers(skip+1, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}

	if len(pcs) == 0 {
		return nil
	}

	var frames []entity.Frame
	callersFrames := runtime.CallersFrames(pcs)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, entity.Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return frames
}
