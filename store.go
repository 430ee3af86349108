package forth

// Variable is one named slot in the interpreter's variable list.  A variable
// starts life unset (Set false) and yields integer zero when fetched before
// its first store.
type Variable struct {
	Name  string
	Value Literal
	Set   bool
}

// The store is an arena: variables live in an append-only ordered list, and
// a variable's pointer address is its index in that list at the moment the
// pointer was produced.  Slots are never renumbered.  Names are looked up
// linearly, first match wins; the store does not enforce uniqueness.
//
// Constants are a plain name-keyed mapping, always initialized at creation.
type store struct {
	vars   []Variable
	consts map[string]Literal
}

// declare appends a new unset variable.
func (st *store) declare(name string) {
	st.vars = append(st.vars, Variable{Name: name})
}

// set updates the first variable with the given name in place, or appends a
// new variable already carrying the value.
func (st *store) set(name string, v Literal) {
	for i := range st.vars {
		if st.vars[i].Name == name {
			st.vars[i].Value = v
			st.vars[i].Set = true
			return
		}
	}
	st.vars = append(st.vars, Variable{Name: name, Value: v, Set: true})
}

func (st *store) contains(name string) bool {
	_, ok := st.indexOf(name)
	return ok
}

// indexOf resolves a name to its slot index, the address carried by the
// name's pointer literal.
func (st *store) indexOf(name string) (uint, bool) {
	for i := range st.vars {
		if st.vars[i].Name == name {
			return uint(i), true
		}
	}
	return 0, false
}

// at returns the slot addressed by addr for in-place access.
func (st *store) at(addr uint) (*Variable, bool) {
	if addr >= uint(len(st.vars)) {
		return nil, false
	}
	return &st.vars[addr], true
}

func (st *store) defineConst(name string, v Literal) {
	if st.consts == nil {
		st.consts = make(map[string]Literal)
	}
	st.consts[name] = v
}

func (st *store) constant(name string) (Literal, bool) {
	v, ok := st.consts[name]
	return v, ok
}
