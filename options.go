package forth

import (
	"io"
	"os"

	"github.com/forthkit/forth/internal/flushio"
)

// Option configures an Interp at construction.
type Option interface{ apply(in *Interp) }

var defaults = []Option{
	WithOutput(os.Stdout),
	WithParser(textParser{}),
}

func (in *Interp) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(in)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type outputOption struct{ w io.Writer }
type parserOption struct{ p Parser }
type logfnOption func(mess string, args ...interface{})

func (o outputOption) apply(in *Interp) { in.out = flushio.NewWriteFlusher(o.w) }

func (o parserOption) apply(in *Interp) {
	if o.p != nil {
		in.parser = o.p
	}
}

func (logfn logfnOption) apply(in *Interp) { in.logfn = logfn }
