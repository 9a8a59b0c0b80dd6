package core

import "github.com/amirhossein-jamali/logcat/internal/domain/entity"

// StackCapturer captures the call stack of a goroutine
type StackCapturer interface {
	// Current returns the goroutine calling it
	Current() entity.Goroutine
	// Capture returns the frames of g, innermost first
	Capture(g entity.Goroutine) ([]entity.Frame, error)
}

// ThreadEnumerator lists live goroutines
type ThreadEnumerator interface {
	// GroupOf returns the group a goroutine belongs to by default
	GroupOf(g entity.Goroutine) entity.ThreadGroup
	// ActiveCount returns an estimate of the live goroutines in group
	ActiveCount(group entity.ThreadGroup) int
	// Enumerate returns the live goroutines of group and its subgroups
	Enumerate(group entity.ThreadGroup) ([]entity.ThreadInfo, error)
}

// MemoryReporter writes a memory snapshot to the sink itself
type MemoryReporter interface {
	// Report emits the snapshot under tag at priority and returns the bytes written
	Report(sink LineLogger, priority entity.Priority, tag string) int
}
