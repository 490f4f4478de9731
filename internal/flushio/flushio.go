// Package flushio provides buffered output writers that are flushed at line
// boundaries, and fan out to transcripts.
package flushio

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: writers that already flush,
// discard, or buffer in memory are used as is; anything else is wrapped in a
// bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return terminalWriter{bufio.NewWriter(w), w}
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// terminalWriter remembers the writer under a bufio.Writer so that
// IsTerminal can see through it.
type terminalWriter struct {
	*bufio.Writer
	under io.Writer
}

// IsTerminal reports whether rw is a terminal file, looking through writers
// created by NewWriteFlusher and WriteFlushers.
func IsTerminal(rw interface{}) bool {
	switch impl := rw.(type) {
	case terminalWriter:
		return IsTerminal(impl.under)
	case nopFlusher:
		return IsTerminal(impl.Writer)
	case writeFlushers:
		return len(impl) > 0 && IsTerminal(impl[0])
	case *os.File:
		return term.IsTerminal(int(impl.Fd()))
	}
	return false
}

// WriteFlushers combines any number of WriteFlusher-s into a single one that
// will write into and flush all of them.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch wfs := appendWriteFlusher(nil, wfs...); len(wfs) {
	case 0:
		return nil
	case 1:
		return wfs[0]
	default:
		return wfs
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendWriteFlusher(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		if many, ok := one.(writeFlushers); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}
