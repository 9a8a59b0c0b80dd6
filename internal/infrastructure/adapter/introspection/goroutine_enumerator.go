package introspection

import (
	"runtime"

	"github.com/amirhossein-jamali/logcat/internal/domain/entity"
)

// GoroutineEnumerator implements the ThreadEnumerator interface by parsing
// a full runtime.Stack dump. Goroutines form groups through their
// "created by ... in goroutine N" lineage.
type GoroutineEnumerator struct {
	dump func() []byte
}

// NewGoroutineEnumerator creates an enumerator over the live goroutines
func NewGoroutineEnumerator() *GoroutineEnumerator {
	return &GoroutineEnumerator{dump: func() []byte { return stackDump(true) }}
}

// GroupOf returns the process group, the default group of every goroutine
func (e *GoroutineEnumerator) GroupOf(entity.Goroutine) entity.ThreadGroup {
	return entity.ProcessGroup()
}

// ActiveCount estimates the live goroutines of group
func (e *GoroutineEnumerator) ActiveCount(group entity.ThreadGroup) int {
	if group.IsProcessGroup() {
		return runtime.NumGoroutine()
	}
	records, err := parseDump(e.dump())
	if err != nil {
		return 0
	}
	return len(subtree(records, group.Root))
}

// Enumerate returns the goroutines of group, its root first
func (e *GoroutineEnumerator) Enumerate(group entity.ThreadGroup) ([]entity.ThreadInfo, error) {
	records, err := parseDump(e.dump())
	if err != nil {
		return nil, err
	}
	if !group.IsProcessGroup() {
		records = subtree(records, group.Root)
	}

	threads := make([]entity.ThreadInfo, 0, len(records))
	for _, rec := range records {
		info := entity.ThreadInfo{ID: rec.id, State: rec.state, ParentID: rec.parentID}
		if len(rec.frames) > 0 {
			info.Function = rec.frames[0].Function
		}
		threads = append(threads, info)
	}
	return threads, nil
}

// subtree keeps root and every goroutine it created, directly or not
func subtree(records []goroutineRecord, root uint64) []goroutineRecord {
	children := make(map[uint64][]goroutineRecord)
	var result []goroutineRecord
	for _, rec := range records {
		if rec.id == root {
			result = append(result, rec)
			continue
		}
		if rec.parentID != 0 {
			children[rec.parentID] = append(children[rec.parentID], rec)
		}
	}

	queue := []uint64{root}
	seen := map[uint64]bool{root: true}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range children[id] {
			if seen[child.id] {
				continue
			}
			seen[child.id] = true
			result = append(result, child)
			queue = append(queue, child.id)
		}
	}
	return result
}
