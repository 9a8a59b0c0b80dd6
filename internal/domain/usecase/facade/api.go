package facade

import "github.com/amirhossein-jamali/logcat/internal/domain/entity"

// Every entry point returns the number of bytes written by the host logger,
// or Denied when the priority is filtered out. Errors are limited to
// errs.ErrNotInitialized and, for the formatting variants, errs.ErrInvalidFormat.

// Println emits msg under tag at any priority, ASSERT included
func (f *Facade) Println(priority entity.Priority, tag, msg string) (int, error) {
	return f.println(priority, tag, ObfuscateDefault, plain(msg))
}

// Verbose logs msg at VERBOSE without a component tag
func (f *Facade) Verbose(msg string) (int, error) {
	return f.println(entity.Verbose, "", ObfuscateDefault, plain(msg))
}

// VerboseTag logs msg at VERBOSE under the component tag
func (f *Facade) VerboseTag(tag, msg string) (int, error) {
	return f.println(entity.Verbose, tag, ObfuscateDefault, plain(msg))
}

// Verbosef logs a printf-style message at VERBOSE under the component tag
func (f *Facade) Verbosef(tag, format string, args ...any) (int, error) {
	return f.println(entity.Verbose, tag, ObfuscateDefault, formatted(format, args))
}

// VerboseErr logs msg followed by the error and its stack at VERBOSE
func (f *Facade) VerboseErr(msg string, err error) (int, error) {
	return f.println(entity.Verbose, "", ObfuscateDefault, withError(msg, err))
}

// VerboseTagErr logs msg followed by the error and its stack at VERBOSE under the component tag
func (f *Facade) VerboseTagErr(tag, msg string, err error) (int, error) {
	return f.println(entity.Verbose, tag, ObfuscateDefault, withError(msg, err))
}

// Debug logs msg at DEBUG without a component tag
func (f *Facade) Debug(msg string) (int, error) {
	return f.println(entity.Debug, "", ObfuscateDefault, plain(msg))
}

// DebugTag logs msg at DEBUG under the component tag
func (f *Facade) DebugTag(tag, msg string) (int, error) {
	return f.println(entity.Debug, tag, ObfuscateDefault, plain(msg))
}

// Debugf logs a printf-style message at DEBUG under the component tag
func (f *Facade) Debugf(tag, format string, args ...any) (int, error) {
	return f.println(entity.Debug, tag, ObfuscateDefault, formatted(format, args))
}

// DebugErr logs msg followed by the error and its stack at DEBUG
func (f *Facade) DebugErr(msg string, err error) (int, error) {
	return f.println(entity.Debug, "", ObfuscateDefault, withError(msg, err))
}

// DebugTagErr logs msg followed by the error and its stack at DEBUG under the component tag
func (f *Facade) DebugTagErr(tag, msg string, err error) (int, error) {
	return f.println(entity.Debug, tag, ObfuscateDefault, withError(msg, err))
}

// DebugObfuscate logs msg at DEBUG deciding obfuscation for this call only
func (f *Facade) DebugObfuscate(tag, msg string, obfuscate bool) (int, error) {
	return f.println(entity.Debug, tag, ObfuscationOf(obfuscate), plain(msg))
}

// Info logs msg at INFO without a component tag
func (f *Facade) Info(msg string) (int, error) {
	return f.println(entity.Info, "", ObfuscateDefault, plain(msg))
}

// InfoTag logs msg at INFO under the component tag
func (f *Facade) InfoTag(tag, msg string) (int, error) {
	return f.println(entity.Info, tag, ObfuscateDefault, plain(msg))
}

// Infof logs a printf-style message at INFO under the component tag
func (f *Facade) Infof(tag, format string, args ...any) (int, error) {
	return f.println(entity.Info, tag, ObfuscateDefault, formatted(format, args))
}

// InfoErr logs msg followed by the error and its stack at INFO
func (f *Facade) InfoErr(msg string, err error) (int, error) {
	return f.println(entity.Info, "", ObfuscateDefault, withError(msg, err))
}

// InfoTagErr logs msg followed by the error and its stack at INFO under the component tag
func (f *Facade) InfoTagErr(tag, msg string, err error) (int, error) {
	return f.println(entity.Info, tag, ObfuscateDefault, withError(msg, err))
}

// Warn logs msg at WARN without a component tag
func (f *Facade) Warn(msg string) (int, error) {
	return f.println(entity.Warn, "", ObfuscateDefault, plain(msg))
}

// WarnTag logs msg at WARN under the component tag
func (f *Facade) WarnTag(tag, msg string) (int, error) {
	return f.println(entity.Warn, tag, ObfuscateDefault, plain(msg))
}

// Warnf logs a printf-style message at WARN under the component tag
func (f *Facade) Warnf(tag, format string, args ...any) (int, error) {
	return f.println(entity.Warn, tag, ObfuscateDefault, formatted(format, args))
}

// WarnErr logs msg followed by the error and its stack at WARN
func (f *Facade) WarnErr(msg string, err error) (int, error) {
	return f.println(entity.Warn, "", ObfuscateDefault, withError(msg, err))
}

// WarnTagErr logs msg followed by the error and its stack at WARN under the component tag
func (f *Facade) WarnTagErr(tag, msg string, err error) (int, error) {
	return f.println(entity.Warn, tag, ObfuscateDefault, withError(msg, err))
}

// WarnCause logs the error and its stack as the message at WARN
func (f *Facade) WarnCause(err error) (int, error) {
	return f.WarnTagCause("", err)
}

// WarnTagCause logs the error and its stack as the message at WARN under the component tag
func (f *Facade) WarnTagCause(tag string, err error) (int, error) {
	return f.println(entity.Warn, tag, ObfuscateDefault, func() (string, error) {
		return StackTraceString(err), nil
	})
}

// Error logs msg at ERROR without a component tag
func (f *Facade) Error(msg string) (int, error) {
	return f.println(entity.Error, "", ObfuscateDefault, plain(msg))
}

// ErrorTag logs msg at ERROR under the component tag
func (f *Facade) ErrorTag(tag, msg string) (int, error) {
	return f.println(entity.Error, tag, ObfuscateDefault, plain(msg))
}

// Errorf logs a printf-style message at ERROR under the component tag
func (f *Facade) Errorf(tag, format string, args ...any) (int, error) {
	return f.println(entity.Error, tag, ObfuscateDefault, formatted(format, args))
}

// ErrorErr logs msg followed by the error and its stack at ERROR
func (f *Facade) ErrorErr(msg string, err error) (int, error) {
	return f.println(entity.Error, "", ObfuscateDefault, withError(msg, err))
}

// ErrorTagErr logs msg followed by the error and its stack at ERROR under the component tag
func (f *Facade) ErrorTagErr(tag, msg string, err error) (int, error) {
	return f.println(entity.Error, tag, ObfuscateDefault, withError(msg, err))
}
