package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is one line of input, without its line ending, and where it came from.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input reads lines sequentially through a Queue of one or more input
// streams, closing each stream that implements io.Closer once exhausted.
// The last line read is retained to facilitate user feedback.
type Input struct {
	Queue []io.Reader
	Last  Line

	cur io.Reader
	br  *bufio.Reader
	loc Location
}

// Push appends readers to the Queue.
func (in *Input) Push(rs ...io.Reader) {
	in.Queue = append(in.Queue, rs...)
}

// Location returns the location of the next line to be read.
func (in *Input) Location() Location {
	if in.br == nil && len(in.Queue) > 0 {
		return Location{Name: nameOf(in.Queue[0]), Line: 1}
	}
	loc := in.loc
	loc.Line++
	return loc
}

// ReadLine reads the next line, moving on to the next queued stream when the
// current one is exhausted. It returns io.EOF once every stream is.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		s, err := in.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return Line{}, err
		}
		if s == "" && err == io.EOF {
			in.closeCur()
			continue
		}

		in.loc.Line++
		in.Last = Line{in.loc, strings.TrimRight(s, "\r\n")}
		return in.Last, nil
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	err = in.closeCur()
	for _, r := range in.Queue {
		if cerr := closeReader(r); err == nil {
			err = cerr
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(in.cur)
	in.loc = Location{Name: nameOf(in.cur)}
	return true
}

func (in *Input) closeCur() error {
	cur := in.cur
	in.cur, in.br = nil, nil
	return closeReader(cur)
}

func closeReader(r io.Reader) error {
	if cl, ok := r.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// NamedReader attaches a name to a reader for Location reporting.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func (nr namedReader) Close() error { return closeReader(nr.Reader) }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
