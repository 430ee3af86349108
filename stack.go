package forth

// The stack is simply a standard LIFO data structure that is used implicitly
// by most of the primitives.  Index 0 is the bottom; the last element is the
// top.  Indexed access and removal from arbitrary positions exists for the
// sake of over and rot.
type stack []Literal

func (s *stack) push(v Literal) {
	*s = append(*s, v)
}

func (s *stack) pop() (Literal, bool) {
	i := len(*s) - 1
	if i < 0 {
		return Literal{}, false
	}
	v := (*s)[i]
	*s = (*s)[:i]
	return v, true
}

func (s stack) last() (Literal, bool) {
	if len(s) == 0 {
		return Literal{}, false
	}
	return s[len(s)-1], true
}

func (s stack) length() int { return len(s) }

func (s stack) get(i int) Literal { return s[i] }

// remove takes the element at i out of the stack, shifting any elements
// above it down.
func (s *stack) remove(i int) Literal {
	v := (*s)[i]
	*s = append((*s)[:i], (*s)[i+1:]...)
	return v
}
