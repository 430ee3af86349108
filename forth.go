package forth

import (
	"sort"

	"github.com/forthkit/forth/internal/flushio"
)

// Interp owns all interpreter state: the operand stack, the variable and
// constant store, and both word tables.  Nothing is shared between
// instances, and an instance must not be used from more than one goroutine.
type Interp struct {
	stack stack
	store store

	natives map[string]nativeFn
	words   map[string]word

	parser Parser
	out    flushio.WriteFlusher
	logfn  func(mess string, args ...interface{})
}

// A user-defined word's body is a sequence of pre-resolved executable
// elements, built once at definition time.  Execution is pure traversal and
// dispatch; nothing is re-parsed at call time.
type word struct {
	name string
	body []cell
}

// A cell is either an already-typed literal or a by-name word reference.
// References resolve through the ordinary dispatch chain at invocation time,
// which is what lets a definition call words defined later, itself included.
type cell struct {
	lit   Literal
	ref   string
	isRef bool
}

// ExecuteLine parses and executes one line of source text.  A failure aborts
// the remainder of the line, leaving the stack and store in whatever partial
// state preceded it; recovery belongs to the caller.
func (in *Interp) ExecuteLine(line string) error {
	nodes, err := in.parser.ParseLine(line)
	if err != nil {
		return err
	}
	err = in.execute(nodes)
	if ferr := in.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (in *Interp) execute(nodes []Node) error {
	for _, n := range nodes {
		if err := in.dispatch(n); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) dispatch(n Node) error {
	switch n := n.(type) {
	case LiteralNode:
		in.logf("push %v -- s:%v", n.Lit, in.stack)
		in.push(n.Lit.Clone())
		return nil

	case DeclareNode:
		in.logf("variable %v @%v", n.Name, len(in.store.vars))
		in.store.declare(n.Name)
		return nil

	case ConstantNode:
		v, err := in.unary()
		if err != nil {
			return err
		}
		in.logf("constant %v = %v", n.Name, v)
		in.store.defineConst(n.Name, v)
		return nil

	case DefineNode:
		w, err := compileWord(n)
		if err != nil {
			return err
		}
		in.logf("define %v (%v cells)", w.name, len(w.body))
		in.words[w.name] = w
		return nil

	case NameNode:
		return in.invoke(n.Name)
	}
	return nil
}

// invoke resolves a name token: a declared variable resolves to its pointer
// literal and a constant to its value; otherwise the native table is
// consulted before user definitions (natives always win), and an unresolved
// name is a hard failure.
func (in *Interp) invoke(name string) error {
	if addr, ok := in.store.indexOf(name); ok {
		in.logf("var %v -> @%v", name, addr)
		in.push(Ptr(addr, 0))
		return nil
	}
	if v, ok := in.store.constant(name); ok {
		in.logf("const %v -> %v", name, v)
		in.push(v.Clone())
		return nil
	}
	if fn, ok := in.natives[name]; ok {
		in.logf("exec %v -- s:%v", name, in.stack)
		return fn(in)
	}
	if w, ok := in.words[name]; ok {
		return in.runWord(w)
	}
	return UndefinedWordError(name)
}

func (in *Interp) runWord(w word) error {
	in.logf("call %v -- s:%v", w.name, in.stack)
	if in.logfn != nil {
		defer in.withLogPrefix("\t")()
	}
	for _, c := range w.body {
		if !c.isRef {
			in.push(c.lit.Clone())
			continue
		}
		if err := in.invoke(c.ref); err != nil {
			return err
		}
	}
	return nil
}

// compileWord builds a word's stored body from its parsed definition.
// Defining forms make no sense inside a body and are rejected up front.
func compileWord(def DefineNode) (word, error) {
	w := word{name: def.Name, body: make([]cell, 0, len(def.Body))}
	for _, n := range def.Body {
		switch n := n.(type) {
		case LiteralNode:
			w.body = append(w.body, cell{lit: n.Lit.Clone()})
		case NameNode:
			w.body = append(w.body, cell{ref: n.Name, isRef: true})
		default:
			return word{}, &SyntaxError{Msg: "defining forms are not allowed in a definition"}
		}
	}
	return w, nil
}

func (in *Interp) push(v Literal) {
	in.stack.push(v)
}

func (in *Interp) logf(mess string, args ...interface{}) {
	if in.logfn != nil {
		in.logfn(mess, args...)
	}
}

func (in *Interp) withLogPrefix(prefix string) func() {
	logfn := in.logfn
	in.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		in.logfn = logfn
	}
}

//// Introspection
////
//// All accessors return snapshots; mutating a snapshot never touches
//// interpreter-owned state.

// Push puts an independent copy of the given literal on the stack, for
// embedding hosts that seed state before executing lines.
func (in *Interp) Push(v Literal) {
	in.push(v.Clone())
}

// SetVariable stores a copy of the value into the named variable, updating
// the first match in place or declaring a new variable already carrying the
// value; for embedding hosts that seed state before executing lines.
func (in *Interp) SetVariable(name string, v Literal) {
	in.store.set(name, v.Clone())
}

// Last returns a copy of the top of the stack, or ErrStackUnderflow if the
// stack is empty.
func (in *Interp) Last() (Literal, error) {
	v, ok := in.stack.last()
	if !ok {
		return Literal{}, ErrStackUnderflow
	}
	return v.Clone(), nil
}

// Stack returns a bottom-to-top copy of the operand stack.
func (in *Interp) Stack() []Literal {
	out := make([]Literal, in.stack.length())
	for i := range out {
		out[i] = in.stack.get(i).Clone()
	}
	return out
}

// Variables returns a copy of the variable list in declaration order; slice
// index is pointer address.
func (in *Interp) Variables() []Variable {
	out := make([]Variable, len(in.store.vars))
	for i, v := range in.store.vars {
		out[i] = Variable{Name: v.Name, Value: v.Value.Clone(), Set: v.Set}
	}
	return out
}

// Constants returns a copy of the constant table.
func (in *Interp) Constants() map[string]Literal {
	out := make(map[string]Literal, len(in.store.consts))
	for name, v := range in.store.consts {
		out[name] = v.Clone()
	}
	return out
}

// NativeWords returns the sorted names of the native primitive table.
func (in *Interp) NativeWords() []string {
	return sortedKeys(in.natives)
}

// UserWords returns the sorted names of the user-defined word table.
func (in *Interp) UserWords() []string {
	return sortedKeys(in.words)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
