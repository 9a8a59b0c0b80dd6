package entity

import (
	"fmt"
	"strconv"
)

// Goroutine identifies a goroutine by its runtime id
type Goroutine struct {
	ID uint64
}

// String returns the goroutine in the runtime's own notation
func (g Goroutine) String() string {
	return "goroutine " + strconv.FormatUint(g.ID, 10)
}

// Frame is one entry of a captured call stack
type Frame struct {
	Function string
	File     string
	Line     int
}

// String returns the frame as Function(File:Line)
func (f Frame) String() string {
	if f.File == "" {
		return f.Function + "(Unknown Source)"
	}
	return fmt.Sprintf("%s(%s:%d)", f.Function, f.File, f.Line)
}

// ThreadInfo describes a live goroutine
type ThreadInfo struct {
	ID       uint64
	State    string
	Function string
	// ParentID is the goroutine that created this one, 0 when unknown
	ParentID uint64
}

// String returns the goroutine as Goroutine[id,state,function]
func (t ThreadInfo) String() string {
	return fmt.Sprintf("Goroutine[%d,%s,%s]", t.ID, t.State, t.Function)
}

// ThreadGroup is the subtree of goroutines created, directly or not, by Root.
// Root 0 is the process group that contains every goroutine.
type ThreadGroup struct {
	Name string
	Root uint64
}

// ProcessGroup is the default group of every goroutine
func ProcessGroup() ThreadGroup {
	return ThreadGroup{Name: "main", Root: 0}
}

// IsProcessGroup reports whether g spans every goroutine
func (g ThreadGroup) IsProcessGroup() bool {
	return g.Root == 0
}
