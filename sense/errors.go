// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sense

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// InvariantError is the panic value raised when an internal invariant of the
// scheduler does not hold. It always denotes a malformed input graph or a
// programming error, never a recoverable condition.
//
// The panic value is the *InvariantError itself; it records the stack of
// the panicking goroutine, printed with the %+v verb.
//
type InvariantError struct {
	Msg   string
	Obj   string // offending object, if any
	stack errors.StackTrace
}

func (e *InvariantError) Error() string {
	if e.Obj == "" {
		return "invariant violated: " + e.Msg
	}
	return "invariant violated: " + e.Msg + " (" + e.Obj + ")"
}

// StackTrace returns the stack at the point of the panic.
//
func (e *InvariantError) StackTrace() errors.StackTrace { return e.stack }

// Format implements fmt.Formatter. %+v prints the error followed by its
// stack trace.
//
func (e *InvariantError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		io.WriteString(s, e.Error())
		if s.Flag('+') {
			e.stack.Format(s, verb)
		}
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Panicf panics with an *InvariantError about obj.
//
func Panicf(obj interface{}, format string, args ...interface{}) {
	e := &InvariantError{Msg: fmt.Sprintf(format, args...)}
	if obj != nil {
		e.Obj = fmt.Sprint(obj)
	}
	// drop the Panicf frame
	if st := errors.New(e.Msg).(stackTracer).StackTrace(); len(st) > 1 {
		e.stack = st[1:]
	}
	panic(e)
}

func invariant(obj interface{}, format string, args ...interface{}) {
	Panicf(obj, format, args...)
}
