// Package logcat is a process-wide logging façade over a line-oriented host
// log sink.
//
// An application picks one application tag with Init, under which every
// line is emitted. Messages are filtered by priority against a minimum that
// is either forced to VERBOSE or looked up in an override source
// (log.tag.<AppTag>), defaulting to INFO. Admitted messages are composed as
// "ComponentTag: message", optionally obfuscated, and handed to the host
// LineLogger. Dumpers print goroutine stacks, goroutine lists and memory
// snapshots through the same pipeline.
//
// The package functions act on a process-default Facade. Code that prefers
// explicit dependencies creates its own with New or NewRuntime.
//
//	logcat.InitVerbose("xLogLib", true)
//	logcat.DebugTag("Comp", "hi") // D/xLogLib: Comp: hi
//
// Every entry point returns the number of bytes written, or Denied when
// the priority is filtered out. Before Init, every operation but Init fails
// with ErrNotInitialized.
package logcat
