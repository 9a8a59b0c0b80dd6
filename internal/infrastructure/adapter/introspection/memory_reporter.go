package introspection

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
	"github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

const (
	// MemInfoPath is the kernel's memory statistics file
	MemInfoPath = "/proc/meminfo"

	memInfoReadSize = 2048
	openFailure     = "Error when opening meminfo file"
)

// ProcMemoryReporter implements the MemoryReporter interface by copying
// the head of /proc/meminfo into one line
type ProcMemoryReporter struct {
	Path string
}

// NewProcMemoryReporter creates a reporter reading MemInfoPath
func NewProcMemoryReporter() *ProcMemoryReporter {
	return &ProcMemoryReporter{Path: MemInfoPath}
}

// Report emits up to the first 2048 bytes of the file, or an ERROR line when
// it cannot be opened
func (r *ProcMemoryReporter) Report(sink core.LineLogger, priority entity.Priority, tag string) int {
	path := r.Path
	if path == "" {
		path = MemInfoPath
	}

	file, err := os.Open(path)
	if err != nil {
		return sink.Println(entity.Error, tag, openFailure)
	}
	defer file.Close()

	buf := make([]byte, memInfoReadSize)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return sink.Println(entity.Error, tag, fmt.Sprintf("Error when reading meminfo file: %v", err))
	}
	return sink.Println(priority, tag, string(buf[:n]))
}

// RuntimeMemoryReporter implements the MemoryReporter interface with the
// Go runtime's own statistics, for hosts without /proc
type RuntimeMemoryReporter struct{}

// NewRuntimeMemoryReporter creates a MemStats based reporter
func NewRuntimeMemoryReporter() *RuntimeMemoryReporter {
	return &RuntimeMemoryReporter{}
}

// Report emits a meminfo-like snapshot of runtime.MemStats
func (r *RuntimeMemoryReporter) Report(sink core.LineLogger, priority entity.Priority, tag string) int {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	var b strings.Builder
	writeKB := func(name string, value uint64) {
		fmt.Fprintf(&b, "%-16s%10d kB\n", name+":", value/1024)
	}
	writeKB("Sys", stats.Sys)
	writeKB("HeapAlloc", stats.HeapAlloc)
	writeKB("HeapSys", stats.HeapSys)
	writeKB("HeapIdle", stats.HeapIdle)
	writeKB("HeapInuse", stats.HeapInuse)
	writeKB("HeapReleased", stats.HeapReleased)
	writeKB("StackInuse", stats.StackInuse)
	writeKB("TotalAlloc", stats.TotalAlloc)
	fmt.Fprintf(&b, "%-16s%10d\n", "HeapObjects:", stats.HeapObjects)
	fmt.Fprintf(&b, "%-16s%10d\n", "NumGC:", stats.NumGC)
	fmt.Fprintf(&b, "%-16s%10d\n", "Goroutines:", runtime.NumGoroutine())

	return sink.Println(priority, tag, b.String())
}

// NewMemoryReporter returns the reporter named by source: "proc" or "runtime".
// "auto" picks proc when MemInfoPath exists.
func NewMemoryReporter(source string) (core.MemoryReporter, error) {
	switch source {
	case "proc":
		return NewProcMemoryReporter(), nil
	case "runtime":
		return NewRuntimeMemoryReporter(), nil
	case "", "auto":
		if _, err := os.Stat(MemInfoPath); err == nil {
			return NewProcMemoryReporter(), nil
		}
		return NewRuntimeMemoryReporter(), nil
	default:
		return nil, fmt.Errorf("unknown memory source %q", source)
	}
}
