package logio

import (
	"bytes"
	"sync"
)

// Writer tees output onto a log: every non-blank line written becomes one
// Logf call, marked the same way the shell marks its own trace lines. A line
// still open when Flush is called, such as a prompt, is logged as it stands.
//
// Writer implements flushio.WriteFlusher, so it may be given directly to
// anything that flushes its output after each exchange.
type Writer struct {
	Logf func(string, ...interface{})
	Mark string

	mu      sync.Mutex
	partial []byte
}

// Write logs each line that p completes, holding back any trailing partial
// line until a later Write or Flush completes it.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		line, rest, found := bytes.Cut(p, []byte{'\n'})
		if !found {
			lw.partial = append(lw.partial, p...)
			break
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.emit(line)
		p = rest
	}
	return n, nil
}

// Flush logs any partial line.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.emit(lw.partial)
		lw.partial = lw.partial[:0]
	}
	return nil
}

func (lw *Writer) emit(line []byte) {
	line = bytes.TrimRight(line, " \r")
	if len(line) == 0 {
		return
	}
	if lw.Mark == "" {
		lw.Logf("%s", line)
	} else {
		lw.Logf("%v %s", lw.Mark, line)
	}
}
