package forth

import "io"

// New builds an interpreter with the full native primitive table, applying
// defaults before the given options.
func New(opts ...Option) *Interp {
	in := &Interp{
		natives: nativeWords(),
		words:   make(map[string]word),
	}
	in.apply(opts...)
	return in
}

// WithOutput directs console output (the `.`, emit, and cr words); the
// default is standard output.  Output is flushed at line boundaries.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithParser swaps in a different line parser collaborator.
func WithParser(p Parser) Option { return parserOption{p} }

// WithLogf enables trace logging of token dispatch through the given
// printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }
