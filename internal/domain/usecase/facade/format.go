package facade

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
)

// formatMessage expands format with args. fmt reports mistakes inline as
// %!verb(...) markers; those are turned into a *FormatError instead.
func formatMessage(format string, args []any) (string, error) {
	if reason := checkFormat(format, args); reason != "" {
		return "", &errs.FormatError{Format: format, Reason: reason}
	}
	return fmt.Sprintf(format, args...), nil
}

// checkFormat walks format the way fmt does and returns why it cannot be
// expanded with args, or "" when it can
func checkFormat(format string, args []any) string {
	var (
		argNum    int
		reordered bool
		end       = len(format)
	)

	for i := 0; i < end; {
		for i < end && format[i] != '%' {
			i++
		}
		if i >= end {
			break
		}
		i++

		// flags
	flags:
		for ; i < end; i++ {
			switch format[i] {
			case '#', '0', '+', '-', ' ':
			default:
				break flags
			}
		}

		goodArgNum := true
		var afterIndex bool

		argNum, i, afterIndex = argNumber(argNum, format, i, len(args), &goodArgNum, &reordered)

		// width
		if i < end && format[i] == '*' {
			i++
			if !goodArgNum || argNum >= len(args) || !isIntArg(args[argNum]) {
				return "bad width argument"
			}
			argNum++
			afterIndex = false
		} else {
			start := i
			for i < end && '0' <= format[i] && format[i] <= '9' {
				i++
			}
			if afterIndex && i > start {
				goodArgNum = false
			}
		}

		// precision
		if i+1 <= end && format[i] == '.' {
			i++
			if afterIndex {
				goodArgNum = false
			}
			argNum, i, afterIndex = argNumber(argNum, format, i, len(args), &goodArgNum, &reordered)
			if i < end && format[i] == '*' {
				i++
				if !goodArgNum || argNum >= len(args) || !isIntArg(args[argNum]) {
					return "bad precision argument"
				}
				argNum++
				afterIndex = false
			} else {
				for i < end && '0' <= format[i] && format[i] <= '9' {
					i++
				}
			}
		}

		if !afterIndex {
			argNum, i, _ = argNumber(argNum, format, i, len(args), &goodArgNum, &reordered)
		}

		if i >= end {
			return "missing verb at end of format"
		}

		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size

		switch {
		case verb == '%':
			continue
		case !goodArgNum:
			return fmt.Sprintf("bad argument index for %%%c", verb)
		case argNum >= len(args):
			return fmt.Sprintf("missing argument for %%%c", verb)
		}

		if reason := checkVerb(verb, args[argNum]); reason != "" {
			return reason
		}
		argNum++
	}

	if !reordered && argNum < len(args) {
		return fmt.Sprintf("%d extra argument(s)", len(args)-argNum)
	}
	return ""
}

// checkVerb formats arg alone with verb and looks for fmt's %!verb(...)
// markers beyond those already in the argument's own text. Markers can sit
// anywhere, inside map or slice elements too.
func checkVerb(verb rune, arg any) string {
	out := fmt.Sprintf("%"+string(verb), arg)
	if !strings.Contains(out, "%!") {
		return ""
	}
	if panicked(out, arg) {
		return fmt.Sprintf("formatting %T with %%%c panicked", arg, verb)
	}
	if strings.Count(out, "%!") > strings.Count(fmt.Sprint(arg), "%!") {
		return fmt.Sprintf("verb %%%c does not apply to %T", verb, arg)
	}
	return ""
}

// panicked reports whether out carries a panic recovered by fmt. A string
// argument can only hold such text literally.
func panicked(out string, arg any) bool {
	const marker = "(PANIC="
	if !strings.Contains(out, marker) {
		return false
	}
	if s, ok := arg.(string); ok {
		return strings.Count(out, marker) > strings.Count(s, marker)
	}
	return true
}

// argNumber parses an explicit [n] argument index at format[i:]
func argNumber(argNum int, format string, i, numArgs int, good, reordered *bool) (int, int, bool) {
	if len(format) <= i || format[i] != '[' {
		return argNum, i, false
	}
	*reordered = true

	index, width, ok := parseArgNumber(format[i:])
	if ok && 0 <= index && index < numArgs {
		return index, i + width, true
	}
	*good = false
	return argNum, i + width, ok
}

// parseArgNumber returns the zero-based index of a bracketed argument number
// and the bytes it spans
func parseArgNumber(format string) (index int, width int, ok bool) {
	if len(format) < 3 {
		return 0, 1, false
	}
	for i := 1; i < len(format); i++ {
		if format[i] != ']' {
			continue
		}
		n := 0
		for j := 1; j < i; j++ {
			c := format[j]
			if c < '0' || c > '9' {
				return 0, i + 1, false
			}
			n = n*10 + int(c-'0')
			if n > 1e6 {
				return 0, i + 1, false
			}
		}
		if i == 1 {
			return 0, i + 1, false
		}
		return n - 1, i + 1, true
	}
	return 0, 1, false
}

func isIntArg(arg any) bool {
	if arg == nil {
		return false
	}
	switch reflect.TypeOf(arg).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}
