/*
© 2021–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Short returns a single-line representation: kind, message and the
// innermost caller location, eg. "not-found: empty/ fsload.(*Loader).
// DirloadWithStat-loader.go:42"
func Short(err error) (s string) {
	if err == nil {
		return ""
	}
	var ke *kindError
	if !errors.As(err, &ke) || len(ke.stack) == 0 {
		return err.Error()
	}
	frame, _ := runtime.CallersFrames(ke.stack[:1]).Next()
	return fmt.Sprintf("%s %s-%s:%d", err.Error(), funcName(frame.Function), fileName(frame.File), frame.Line)
}

// Long returns the error message followed by its full captured stack trace,
// one frame per line.
func Long(err error) (s string) {
	if err == nil {
		return ""
	}
	var ke *kindError
	if !errors.As(err, &ke) || len(ke.stack) == 0 {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(err.Error())
	frames := runtime.CallersFrames(ke.stack)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "\n\t%s\n\t\t%s:%d", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// AppendError associates an additional error with err, nil-tolerant on
// either side.
func AppendError(err, err2 error) error {
	if err2 == nil {
		return err
	}
	if err == nil {
		return err2
	}
	return fmt.Errorf("%w; %s", err, err2.Error())
}

func funcName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}

func fileName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}
