package forth

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Literal.
type Kind int

const (
	KindUnknown Kind = iota
	KindInteger
	KindString
	KindPointer
	KindArray
)

var kindNames = [...]string{
	"unknown",
	"integer",
	"string",
	"pointer",
	"array",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pointer is an indirect reference to a variable slot: Address is the slot's
// index in the interpreter's variable list, Offset is reserved for array
// addressing and only participates in equality and ordering.
type Pointer struct {
	Address uint
	Offset  uint
}

// Literal is a single tagged value: integer, text, pointer, array, or the
// unknown sentinel.  The zero Literal is Unknown.  Literals have value
// semantics on the stack; use Clone when a fully independent copy is needed.
type Literal struct {
	kind Kind
	num  int64
	str  string
	ptr  Pointer
	arr  []Literal
}

// Int makes an integer literal.  Conversion is total: every int64 is valid.
func Int(v int64) Literal { return Literal{kind: KindInteger, num: v} }

// Str makes a string literal.  Conversion is total: every string is valid.
func Str(s string) Literal { return Literal{kind: KindString, str: s} }

// Ptr makes a pointer literal addressing the given variable slot.
func Ptr(address, offset uint) Literal {
	return Literal{kind: KindPointer, ptr: Pointer{Address: address, Offset: offset}}
}

// Arr makes an array literal holding independent copies of the given elements.
func Arr(elems ...Literal) Literal {
	arr := make([]Literal, len(elems))
	for i, el := range elems {
		arr[i] = el.Clone()
	}
	return Literal{kind: KindArray, arr: arr}
}

// Unknown returns the absence-of-value sentinel; it is never produced by
// parsing, only as a default.
func Unknown() Literal { return Literal{} }

// Kind reports which variant the literal holds.
func (l Literal) Kind() Kind { return l.kind }

// AsInt unpacks an integer literal.
func (l Literal) AsInt() (int64, bool) { return l.num, l.kind == KindInteger }

// AsString unpacks a string literal.
func (l Literal) AsString() (string, bool) { return l.str, l.kind == KindString }

// AsPointer unpacks a pointer literal.
func (l Literal) AsPointer() (Pointer, bool) { return l.ptr, l.kind == KindPointer }

// AsArray unpacks an array literal, copying its elements.
func (l Literal) AsArray() ([]Literal, bool) {
	if l.kind != KindArray {
		return nil, false
	}
	arr := make([]Literal, len(l.arr))
	for i, el := range l.arr {
		arr[i] = el.Clone()
	}
	return arr, true
}

// Clone returns a fully independent copy; nested arrays are copied deeply.
func (l Literal) Clone() Literal {
	if l.kind == KindArray {
		return Arr(l.arr...)
	}
	return l
}

// Equal implements heterogeneous-safe equality: literals of different
// variants are never equal, except that Unknown equals Unknown.
func (l Literal) Equal(other Literal) bool {
	if l.kind != other.kind {
		return false
	}
	switch l.kind {
	case KindInteger:
		return l.num == other.num
	case KindString:
		return l.str == other.str
	case KindPointer:
		return l.ptr == other.ptr
	case KindArray:
		if len(l.arr) != len(other.arr) {
			return false
		}
		for i := range l.arr {
			if !l.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
	return true // Unknown == Unknown
}

// Compare orders two literals of the same variant, returning a negative,
// zero, or positive result.  Literals of different variants are incomparable,
// as are Unknowns (even against each other); incomparable pairs report
// ok=false and the caller must treat that as a failure, not as false.
func (l Literal) Compare(other Literal) (c int, ok bool) {
	if l.kind != other.kind {
		return 0, false
	}
	switch l.kind {
	case KindInteger:
		return cmpInt64(l.num, other.num), true
	case KindString:
		return strings.Compare(l.str, other.str), true
	case KindPointer:
		if c := cmpUint(l.ptr.Address, other.ptr.Address); c != 0 {
			return c, true
		}
		return cmpUint(l.ptr.Offset, other.ptr.Offset), true
	case KindArray:
		// lexicographic, element-wise
		n := len(l.arr)
		if len(other.arr) < n {
			n = len(other.arr)
		}
		for i := 0; i < n; i++ {
			c, ok := l.arr[i].Compare(other.arr[i])
			if !ok {
				return 0, false
			}
			if c != 0 {
				return c, true
			}
		}
		return cmpInt64(int64(len(l.arr)), int64(len(other.arr))), true
	}
	return 0, false
}

// Truthy follows the logic words' convention: a non-zero integer is true,
// integer zero is false.  Strings are always true; pointer, array, and
// unknown values are not truthy.
func (l Literal) Truthy() bool {
	switch l.kind {
	case KindInteger:
		return l.num != 0
	case KindString:
		return true
	}
	return false
}

// String renders the display form used by the `.` word: integers in decimal,
// strings as their raw text, pointers and arrays in a debug-structural form,
// and Unknown as empty text.
func (l Literal) String() string {
	switch l.kind {
	case KindInteger:
		return strconv.FormatInt(l.num, 10)
	case KindString:
		return l.str
	case KindPointer:
		return fmt.Sprintf("Pointer{address: %d, offset: %d}", l.ptr.Address, l.ptr.Offset)
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, el := range l.arr {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if el.kind == KindString {
				sb.WriteString(strconv.Quote(el.str))
			} else {
				sb.WriteString(el.String())
			}
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return ""
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpUint(a, b uint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
