// Package lineio reads lines sequentially through a queue of named sources,
// tracking locations so that diagnostics can say where a line came from.
package lineio

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an input source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Source pairs a reader with the name used in locations, typically a file
// path or "stdin".
type Source struct {
	Name   string
	Reader io.Reader
}

// Input reads lines from one or more sources in order, rolling over to the
// next source at EOF.
type Input struct {
	queue []Source
	sc    *bufio.Scanner
	loc   Location
}

// New builds an Input over the given sources.
func New(sources ...Source) *Input {
	return &Input{queue: sources}
}

// ReadLine returns the next line (without its terminator) and its location.
// It reports io.EOF only once every queued source is exhausted.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		if in.sc == nil {
			if len(in.queue) == 0 {
				return "", in.loc, io.EOF
			}
			src := in.queue[0]
			in.queue = in.queue[1:]
			in.sc = bufio.NewScanner(src.Reader)
			in.loc = Location{Name: src.Name}
		}
		if in.sc.Scan() {
			in.loc.Line++
			return in.sc.Text(), in.loc, nil
		}
		if err := in.sc.Err(); err != nil {
			return "", in.loc, err
		}
		in.sc = nil
	}
}
