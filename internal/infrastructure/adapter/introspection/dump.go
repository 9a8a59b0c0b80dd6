package introspection

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/maruel/panicparse/v2/stack"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

const initialDumpSize = 64 << 10

// goroutineRecord is one goroutine parsed from a runtime.Stack dump
type goroutineRecord struct {
	id        uint64
	state     string
	frames    []entity.Frame
	parentID  uint64
	createdBy string
}

// stackDump returns runtime.Stack output, growing the buffer until it fits
func stackDump(all bool) []byte {
	buf := make([]byte, initialDumpSize)
	for {
		n := runtime.Stack(buf, all)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}

// parseDump parses the text runtime.Stack produces:
//
//	goroutine 18 [sleep, 2 minutes]:
//	time.Sleep(0x3b9aca00)
//		/usr/local/go/src/runtime/time.go:300 +0xf2
//	created by main.main in goroutine 1
//		/src/main.go:12 +0x25
//
// Paths are kept as printed: no GOROOT guessing, no source analysis.
func parseDump(dump []byte) ([]goroutineRecord, error) {
	snapshot, _, err := stack.ScanSnapshot(bytes.NewReader(dump), io.Discard, &stack.Opts{})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse goroutine dump: %w", err)
	}
	if snapshot == nil {
		return nil, nil
	}

	records := make([]goroutineRecord, 0, len(snapshot.Goroutines))
	for _, g := range snapshot.Goroutines {
		rec := goroutineRecord{
			id:     uint64(g.ID),
			state:  g.State,
			frames: framesOf(g.Stack.Calls),
		}
		if len(g.CreatedBy.Calls) > 0 {
			rec.createdBy, rec.parentID = splitCreator(g.CreatedBy.Calls[0].Func.Complete)
		}
		records = append(records, rec)
	}
	return records, nil
}

func framesOf(calls []stack.Call) []entity.Frame {
	frames := make([]entity.Frame, 0, len(calls))
	for _, call := range calls {
		frames = append(frames, entity.Frame{
			Function: call.Func.Complete,
			File:     call.RemoteSrcPath,
			Line:     call.Line,
		})
	}
	return frames
}

// splitCreator separates "main.main in goroutine 1" into the creating
// function and goroutine. Dumps from before Go 1.21 carry no goroutine.
func splitCreator(creator string) (string, uint64) {
	fn, parent, found := strings.Cut(creator, " in goroutine ")
	if !found {
		return creator, 0
	}
	id, err := strconv.ParseUint(strings.TrimSpace(parent), 10, 64)
	if err != nil {
		return fn, 0
	}
	return fn, id
}

// currentID reads the id from the "goroutine 18 [running]:" header of the
// calling goroutine's stack
func currentID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	if _, err := fmt.Sscanf(string(buf[:n]), "goroutine %d ", &id); err != nil {
		return 0
	}
	return id
}
