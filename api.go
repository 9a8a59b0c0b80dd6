package logcat

// Package-level entry points of the default Facade

// Println emits msg under tag at any priority, ASSERT included
func Println(priority Priority, tag, msg string) (int, error) {
	return Default().Println(priority, tag, msg)
}

// Verbose logs msg at VERBOSE
func Verbose(msg string) (int, error) {
	return Default().Verbose(msg)
}

// VerboseTag logs msg at VERBOSE under the component tag
func VerboseTag(tag, msg string) (int, error) {
	return Default().VerboseTag(tag, msg)
}

// Verbosef logs a printf-style message at VERBOSE under the component tag
func Verbosef(tag, format string, args ...any) (int, error) {
	return Default().Verbosef(tag, format, args...)
}

// VerboseErr logs msg, then err and its stack, at VERBOSE
func VerboseErr(msg string, err error) (int, error) {
	return Default().VerboseErr(msg, err)
}

// VerboseTagErr logs msg, then err and its stack, at VERBOSE under the component tag
func VerboseTagErr(tag, msg string, err error) (int, error) {
	return Default().VerboseTagErr(tag, msg, err)
}

// Debug logs msg at DEBUG
func Debug(msg string) (int, error) {
	return Default().Debug(msg)
}

// DebugTag logs msg at DEBUG under the component tag
func DebugTag(tag, msg string) (int, error) {
	return Default().DebugTag(tag, msg)
}

// Debugf logs a printf-style message at DEBUG under the component tag
func Debugf(tag, format string, args ...any) (int, error) {
	return Default().Debugf(tag, format, args...)
}

// DebugErr logs msg, then err and its stack, at DEBUG
func DebugErr(msg string, err error) (int, error) {
	return Default().DebugErr(msg, err)
}

// DebugTagErr logs msg, then err and its stack, at DEBUG under the component tag
func DebugTagErr(tag, msg string, err error) (int, error) {
	return Default().DebugTagErr(tag, msg, err)
}

// DebugObfuscate logs msg at DEBUG, obfuscating it or not regardless of the default
func DebugObfuscate(tag, msg string, obfuscate bool) (int, error) {
	return Default().DebugObfuscate(tag, msg, obfuscate)
}

// Info logs msg at INFO
func Info(msg string) (int, error) {
	return Default().Info(msg)
}

// InfoTag logs msg at INFO under the component tag
func InfoTag(tag, msg string) (int, error) {
	return Default().InfoTag(tag, msg)
}

// Infof logs a printf-style message at INFO under the component tag
func Infof(tag, format string, args ...any) (int, error) {
	return Default().Infof(tag, format, args...)
}

// InfoErr logs msg, then err and its stack, at INFO
func InfoErr(msg string, err error) (int, error) {
	return Default().InfoErr(msg, err)
}

// InfoTagErr logs msg, then err and its stack, at INFO under the component tag
func InfoTagErr(tag, msg string, err error) (int, error) {
	return Default().InfoTagErr(tag, msg, err)
}

// Warn logs msg at WARN
func Warn(msg string) (int, error) {
	return Default().Warn(msg)
}

// WarnTag logs msg at WARN under the component tag
func WarnTag(tag, msg string) (int, error) {
	return Default().WarnTag(tag, msg)
}

// Warnf logs a printf-style message at WARN under the component tag
func Warnf(tag, format string, args ...any) (int, error) {
	return Default().Warnf(tag, format, args...)
}

// WarnErr logs msg, then err and its stack, at WARN
func WarnErr(msg string, err error) (int, error) {
	return Default().WarnErr(msg, err)
}

// WarnTagErr logs msg, then err and its stack, at WARN under the component tag
func WarnTagErr(tag, msg string, err error) (int, error) {
	return Default().WarnTagErr(tag, msg, err)
}

// WarnCause logs err and its stack at WARN
func WarnCause(err error) (int, error) {
	return Default().WarnCause(err)
}

// WarnTagCause logs err and its stack at WARN under the component tag
func WarnTagCause(tag string, err error) (int, error) {
	return Default().WarnTagCause(tag, err)
}

// Error logs msg at ERROR
func Error(msg string) (int, error) {
	return Default().Error(msg)
}

// ErrorTag logs msg at ERROR under the component tag
func ErrorTag(tag, msg string) (int, error) {
	return Default().ErrorTag(tag, msg)
}

// Errorf logs a printf-style message at ERROR under the component tag
func Errorf(tag, format string, args ...any) (int, error) {
	return Default().Errorf(tag, format, args...)
}

// ErrorErr logs msg, then err and its stack, at ERROR
func ErrorErr(msg string, err error) (int, error) {
	return Default().ErrorErr(msg, err)
}

// ErrorTagErr logs msg, then err and its stack, at ERROR under the component tag
func ErrorTagErr(tag, msg string, err error) (int, error) {
	return Default().ErrorTagErr(tag, msg, err)
}
