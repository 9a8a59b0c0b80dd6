package main

import (
	"github.com/amirhossein-jamali/logcat"
	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

const (
	demoTag        = "LogTest"
	demoGoroutines = 7
	demoSleep      = 35 * coreport.Second
)

// runDemo prints a line, the stack, the goroutines and the memory at every
// priority, from ERROR down to VERBOSE
func runDemo(lc *logcat.Facade, tp coreport.TimeProvider) {
	steps := []struct {
		priority logcat.Priority
		log      func(tag, msg string) (int, error)
	}{
		{logcat.PriorityError, lc.ErrorTag},
		{logcat.PriorityWarn, lc.WarnTag},
		{logcat.PriorityInfo, lc.InfoTag},
		{logcat.PriorityDebug, lc.DebugTag},
		{logcat.PriorityVerbose, lc.VerboseTag},
	}

	for _, step := range steps {
		_, _ = step.log(demoTag, "Log level - "+step.priority.String())
		_, _ = lc.PrintCurrentStackTrace("", step.priority)

		tag := ""
		if step.priority == logcat.PriorityVerbose {
			spawnSleepers(tp, demoGoroutines)
			tag = demoTag
		}
		if _, err := lc.PrintCurrentThreads(tag, step.priority); err != nil {
			_, _ = lc.WarnTagErr(demoTag, "Goroutine dump failed", err)
		}
		_, _ = lc.PrintMemoryInfo(step.priority)
	}
}

// spawnSleepers starts count goroutines that sleep for a while, so the
// goroutine dump has something to show
func spawnSleepers(tp coreport.TimeProvider, count int) {
	for i := 0; i < count; i++ {
		go func() {
			<-tp.After(demoSleep)
		}()
	}
}
