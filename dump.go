package forth

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a structural dump of interpreter state: the stack bottom to
// top, the variable arena with addresses, the constant table, and both word
// tables.
func (in *Interp) Dump(out io.Writer) error {
	dump := dumper{in: in, out: out}
	return dump.dump()
}

type dumper struct {
	in  *Interp
	out io.Writer
	err error
}

func (dump *dumper) dump() error {
	dump.printf("# Forth Dump\n")

	dump.printf("  stack:")
	for _, v := range dump.in.stack {
		dump.printf(" %v", dumpForm(v))
	}
	dump.printf("\n")

	dump.printf("  vars:\n")
	for addr, v := range dump.in.store.vars {
		if v.Set {
			dump.printf("    @%v %v = %v\n", addr, v.Name, dumpForm(v.Value))
		} else {
			dump.printf("    @%v %v (unset)\n", addr, v.Name)
		}
	}

	dump.printf("  consts:\n")
	for _, name := range sortedKeys(dump.in.store.consts) {
		dump.printf("    %v = %v\n", name, dumpForm(dump.in.store.consts[name]))
	}

	dump.printf("  native: %v\n", strings.Join(dump.in.NativeWords(), " "))

	dump.printf("  words:\n")
	for _, name := range dump.in.UserWords() {
		w := dump.in.words[name]
		dump.printf("    : %v", name)
		for _, c := range w.body {
			if c.isRef {
				dump.printf(" %v", c.ref)
			} else {
				dump.printf(" %v", dumpForm(c.lit))
			}
		}
		dump.printf(" ;\n")
	}

	return dump.err
}

func (dump *dumper) printf(format string, args ...interface{}) {
	if dump.err == nil {
		_, dump.err = fmt.Fprintf(dump.out, format, args...)
	}
}

// dumpForm quotes strings so that dumped state round-trips visually; other
// variants use their display form.
func dumpForm(v Literal) string {
	if s, ok := v.AsString(); ok {
		return fmt.Sprintf("%q", s)
	}
	if v.Kind() == KindUnknown {
		return "<unknown>"
	}
	return v.String()
}
