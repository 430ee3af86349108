package forth

import (
	"fmt"
	"unicode/utf8"

	"github.com/forthkit/forth/internal/runeio"
)

// Every native primitive shares one contract: pop (or peek) its operands,
// validate their variant, push zero or one result, and fail with
// ErrStackUnderflow when an operand is missing or ErrInvalidOperands when a
// variant check fails.  For binary words the first-popped value is the
// right-hand operand b, the second-popped is the left-hand operand a.
type nativeFn func(in *Interp) error

func nativeWords() map[string]nativeFn {
	return map[string]nativeFn{
		"+": (*Interp).add, "-": (*Interp).sub,
		"*": (*Interp).mul, "/": (*Interp).div,
		"dup": (*Interp).dup, "drop": (*Interp).drop,
		"swap": (*Interp).swap, "over": (*Interp).over,
		"rot": (*Interp).rot, ".": (*Interp).printTop,
		"emit": (*Interp).emit, "cr": (*Interp).cr,
		"=": (*Interp).equal, "<": (*Interp).lessThan,
		">": (*Interp).greaterThan, "invert": (*Interp).invert,
		"and": (*Interp).and, "or": (*Interp).or,
		"!": (*Interp).storeVariable, "@": (*Interp).fetchVariable,
	}
}

// unary pops the single operand of a one-operand word.
func (in *Interp) unary() (Literal, error) {
	v, ok := in.stack.pop()
	if !ok {
		return Literal{}, ErrStackUnderflow
	}
	return v, nil
}

// binary pops the two operands of a binary word: b comes off first, a
// second, matching left-to-right push order.
func (in *Interp) binary() (a, b Literal, err error) {
	if b, err = in.unary(); err != nil {
		return
	}
	a, err = in.unary()
	return
}

// binaryInts pops two operands, both of which must be integers.
func (in *Interp) binaryInts() (a, b int64, err error) {
	la, lb, err := in.binary()
	if err != nil {
		return 0, 0, err
	}
	a, aok := la.AsInt()
	b, bok := lb.AsInt()
	if !aok || !bok {
		return 0, 0, fmt.Errorf("%v %v: %w", la.Kind(), lb.Kind(), ErrInvalidOperands)
	}
	return a, b, nil
}

//// Arithmetic

// Symbol   Function
//    +     pop two integers, add, push
func (in *Interp) add() error {
	a, b, err := in.binaryInts()
	if err != nil {
		return err
	}
	in.push(Int(a + b))
	return nil
}

// Symbol   Function
//    -     pop two integers, subtract, push
func (in *Interp) sub() error {
	a, b, err := in.binaryInts()
	if err != nil {
		return err
	}
	in.push(Int(a - b))
	return nil
}

// Symbol   Function
//    *     pop two integers, multiply, push
func (in *Interp) mul() error {
	a, b, err := in.binaryInts()
	if err != nil {
		return err
	}
	in.push(Int(a * b))
	return nil
}

// Symbol   Function
//    /     pop two integers, divide truncating toward zero, push.
//          A zero divisor is a defined failure, not a runtime trap.
func (in *Interp) div() error {
	a, b, err := in.binaryInts()
	if err != nil {
		return err
	}
	if b == 0 {
		return fmt.Errorf("division by zero: %w", ErrInvalidOperands)
	}
	in.push(Int(a / b))
	return nil
}

//// Stack shuffles

// Name   Function
// dup    push a copy of the top of the stack
func (in *Interp) dup() error {
	v, ok := in.stack.last()
	if !ok {
		return ErrStackUnderflow
	}
	in.push(v.Clone())
	return nil
}

// Name   Function
// drop   discard the top of the stack
func (in *Interp) drop() error {
	_, err := in.unary()
	return err
}

// Name   Function
// swap   exchange the top two stack elements
func (in *Interp) swap() error {
	a, b, err := in.binary()
	if err != nil {
		return err
	}
	in.push(b)
	in.push(a)
	return nil
}

// Name   Function
// over   push a copy of the second-from-top element
func (in *Interp) over() error {
	if n := in.stack.length(); n >= 2 {
		in.push(in.stack.get(n - 2).Clone())
		return nil
	}
	return ErrStackUnderflow
}

// Name   Function
// rot    move the third-from-top element to the top, preserving the
//        relative order of the other two
func (in *Interp) rot() error {
	if n := in.stack.length(); n >= 3 {
		in.push(in.stack.remove(n - 3))
		return nil
	}
	return ErrStackUnderflow
}

//// Input/Output

// Symbol   Function
//    .     write the display form of the top of the stack (not popped),
//          no trailing newline
func (in *Interp) printTop() error {
	v, ok := in.stack.last()
	if !ok {
		return ErrStackUnderflow
	}
	_, err := runeio.WriteString(in.out, v.String())
	return err
}

// Name   Function
// emit   write the rune encoded by the integer on top of the stack
//        (not popped)
func (in *Interp) emit() error {
	v, ok := in.stack.last()
	if !ok {
		return ErrStackUnderflow
	}
	n, isInt := v.AsInt()
	if !isInt {
		return fmt.Errorf("emit needs an integer, got %v: %w", v.Kind(), ErrInvalidOperands)
	}
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return fmt.Errorf("%v is not a unicode scalar value: %w", n, ErrInvalidOperands)
	}
	_, err := runeio.WriteRune(in.out, rune(n))
	return err
}

// Name   Function
// cr     write a newline
func (in *Interp) cr() error {
	_, err := runeio.WriteRune(in.out, '\n')
	return err
}

//// Comparison and logic
////
//// The canonical truth encoding is classic FORTH: -1 is true, 0 is false.

func truth(b bool) Literal {
	if b {
		return Int(-1)
	}
	return Int(0)
}

// Symbol   Function
//    =     pop two literals, push -1 if equal else 0.  Equality is
//          heterogeneous-safe: different variants compare unequal.
func (in *Interp) equal() error {
	a, b, err := in.binary()
	if err != nil {
		return err
	}
	in.push(truth(a.Equal(b)))
	return nil
}

// Symbol   Function
//    <     pop two literals of the same variant, push -1 if a < b else 0.
//          Incomparable operands are a failure, never a default answer.
func (in *Interp) lessThan() error {
	a, b, err := in.binary()
	if err != nil {
		return err
	}
	c, ok := a.Compare(b)
	if !ok {
		return fmt.Errorf("cannot order %v against %v: %w", a.Kind(), b.Kind(), ErrInvalidOperands)
	}
	in.push(truth(c < 0))
	return nil
}

// Symbol   Function
//    >     pop two literals of the same variant, push -1 if a > b else 0
func (in *Interp) greaterThan() error {
	a, b, err := in.binary()
	if err != nil {
		return err
	}
	c, ok := a.Compare(b)
	if !ok {
		return fmt.Errorf("cannot order %v against %v: %w", a.Kind(), b.Kind(), ErrInvalidOperands)
	}
	in.push(truth(c > 0))
	return nil
}

// Name     Function
// invert   pop the top of the stack, push -1 if it was the canonical false
//          literal (integer 0), else 0
func (in *Interp) invert() error {
	a, err := in.unary()
	if err != nil {
		return err
	}
	in.push(truth(a.Equal(Int(0))))
	return nil
}

// Name   Function
// and    pop two integers, push -1 if both are non-zero else 0
func (in *Interp) and() error {
	a, b, err := in.binaryInts()
	if err != nil {
		return err
	}
	in.push(truth(a != 0 && b != 0))
	return nil
}

// Name   Function
// or     pop two integers, push -1 if either is non-zero else 0
func (in *Interp) or() error {
	a, b, err := in.binaryInts()
	if err != nil {
		return err
	}
	in.push(truth(a != 0 || b != 0))
	return nil
}

//// Variable indirection

// Symbol   Function
//    !     top of stack is a pointer, second is a value; store the value
//          into the variable slot the pointer addresses and pop both
func (in *Interp) storeVariable() error {
	value, ptr, err := in.binary()
	if err != nil {
		return err
	}
	p, isPtr := ptr.AsPointer()
	if !isPtr {
		return fmt.Errorf("! needs a pointer, got %v: %w", ptr.Kind(), ErrInvalidOperands)
	}
	slot, ok := in.store.at(p.Address)
	if !ok {
		return fmt.Errorf("pointer address %v out of range: %w", p.Address, ErrInvalidOperands)
	}
	slot.Value = value
	slot.Set = true
	return nil
}

// Symbol   Function
//    @     pop a pointer, push the addressed slot's value, or integer 0
//          if the slot has never been stored
func (in *Interp) fetchVariable() error {
	ptr, err := in.unary()
	if err != nil {
		return err
	}
	p, isPtr := ptr.AsPointer()
	if !isPtr {
		return fmt.Errorf("@ needs a pointer, got %v: %w", ptr.Kind(), ErrInvalidOperands)
	}
	slot, ok := in.store.at(p.Address)
	if !ok {
		return fmt.Errorf("pointer address %v out of range: %w", p.Address, ErrInvalidOperands)
	}
	if !slot.Set {
		in.push(Int(0))
		return nil
	}
	in.push(slot.Value.Clone())
	return nil
}
