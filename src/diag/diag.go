// Package diag provides the explicit diagnostics sink that the
// encoder, decoder and fixer report through, instead of a package
// level logger singleton.
package diag

import (
	"fmt"
	"log"
)

// Sink receives diagnostic events emitted while encoding, decoding or
// fixing a symbol. Implementations must be safe to call from a single
// goroutine at a time; nothing in this module calls a Sink
// concurrently.
type Sink interface {
	Printf(format string, args ...any)
}

// Null discards every event. It is the default when callers don't
// pass a Sink.
type Null struct{}

// Printf implements Sink by doing nothing.
func (Null) Printf(string, ...any) {}

// Log wraps a standard library *log.Logger, matching the plain
// log.Printf/log.Println style used throughout this module's ambient
// stack.
type Log struct {
	L *log.Logger
}

// Printf implements Sink.
func (d Log) Printf(format string, args ...any) {
	if d.L == nil {
		log.Printf(format, args...)
		return
	}
	d.L.Output(2, fmt.Sprintf(format, args...))
}

// Coalesce returns s if non-nil, otherwise a Null sink.
func Coalesce(s Sink) Sink {
	if s == nil {
		return Null{}
	}
	return s
}
