// Package assert implements the precondition checks used across the board
// core. A failed check is a programming error, never a recoverable fault:
// the default handler prints "ASSERT <file> <line>: <msg>" and panics, which
// halts the MCU and aborts the current test on the host.
//
// Tests that deliberately trip a check install their own handler with
// SetHandler, or recover the *Failure panic.
package assert

import (
	"runtime"
	"sync/atomic"

	"boardcore/x/conv"
)

// Failure describes a tripped check. It is the panic value raised by the
// default handler.
type Failure struct {
	File string
	Line int
	Msg  string
}

func (f *Failure) Error() string {
	var buf [20]byte
	s := "ASSERT " + f.File + " " + string(conv.Itoa(buf[:], int64(f.Line)))
	if f.Msg != "" {
		s += ": " + f.Msg
	}
	return s
}

// Handler is called with the details of a failed check. It must not return
// normally; returning lets the caller continue past a violated precondition.
type Handler func(f *Failure)

// Writer receives diagnostic lines (without trailing newline).
type Writer func(string)

var (
	handler atomic.Pointer[Handler]
	writer  atomic.Pointer[Writer]
)

func init() {
	h := Handler(halt)
	handler.Store(&h)
	w := Writer(func(s string) { println(s) })
	writer.Store(&w)
}

func halt(f *Failure) {
	Print(f.Error())
	panic(f)
}

// SetHandler installs h and returns a func that restores the previous one.
func SetHandler(h Handler) (restore func()) {
	prev := handler.Swap(&h)
	return func() { handler.Store(prev) }
}

// SetWriter redirects diagnostics, e.g. to a UART or a test log.
func SetWriter(w Writer) (restore func()) {
	prev := writer.Swap(&w)
	return func() { writer.Store(prev) }
}

// Print writes one diagnostic line through the installed writer.
func Print(s string) {
	if w := writer.Load(); w != nil && *w != nil {
		(*w)(s)
	}
}

// That checks cond and reports the caller's location if it is false.
func That(cond bool, msg string) {
	if cond {
		return
	}
	fail(2, msg)
}

// Fail unconditionally reports a violation at the caller's location.
func Fail(msg string) {
	fail(2, msg)
}

func fail(skip int, msg string) {
	f := &Failure{File: "?", Msg: msg}
	if _, file, line, ok := runtime.Caller(skip); ok {
		f.File = baseName(file)
		f.Line = line
	}
	(*handler.Load())(f)
	// A handler that returns is itself a bug; never continue.
	panic(f)
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
