package forth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteral_equality(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Literal
		want bool
	}{
		{"equal integers", Int(3), Int(3), true},
		{"unequal integers", Int(3), Int(4), false},
		{"equal strings", Str("a"), Str("a"), true},
		{"unequal strings", Str("a"), Str("b"), false},
		{"equal pointers", Ptr(1, 0), Ptr(1, 0), true},
		{"pointer offset participates", Ptr(1, 0), Ptr(1, 2), false},
		{"equal arrays", Arr(Int(1), Str("x")), Arr(Int(1), Str("x")), true},
		{"unequal array lengths", Arr(Int(1)), Arr(Int(1), Int(2)), false},
		{"nested arrays", Arr(Arr(Int(1))), Arr(Arr(Int(1))), true},
		{"unknown equals unknown", Unknown(), Unknown(), true},
		{"integer is not its string", Int(3), Str("3"), false},
		{"integer is not a pointer", Int(1), Ptr(1, 0), false},
		{"unknown is not zero", Unknown(), Int(0), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a), "equality must be symmetric")
		})
	}
}

func TestLiteral_ordering(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Literal
		want int
		ok   bool
	}{
		{"integers", Int(3), Int(4), -1, true},
		{"equal integers", Int(3), Int(3), 0, true},
		{"negative integers", Int(-2), Int(-10), 1, true},
		{"strings lexicographic", Str("abc"), Str("abd"), -1, true},
		{"pointers by address", Ptr(1, 9), Ptr(2, 0), -1, true},
		{"pointers then offset", Ptr(1, 1), Ptr(1, 0), 1, true},
		{"arrays lexicographic", Arr(Int(1), Int(2)), Arr(Int(1), Int(3)), -1, true},
		{"array prefix is less", Arr(Int(1)), Arr(Int(1), Int(0)), -1, true},
		{"cross-variant is incomparable", Int(1), Str("1"), 0, false},
		{"array of mixed variants is incomparable", Arr(Int(1)), Arr(Str("1")), 0, false},
		{"unknowns have no order", Unknown(), Unknown(), 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := tc.a.Compare(tc.b)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, c)
			}
		})
	}
}

func TestLiteral_display(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "-1", Int(-1).String())
	assert.Equal(t, "hello", Str("hello").String())
	assert.Equal(t, "Pointer{address: 3, offset: 0}", Ptr(3, 0).String())
	assert.Equal(t, `[1 "a" [2]]`, Arr(Int(1), Str("a"), Arr(Int(2))).String())
	assert.Equal(t, "", Unknown().String())
}

func TestLiteral_clone(t *testing.T) {
	elem := Int(1)
	a := Arr(elem)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	// unpacked elements are themselves copies
	got, ok := b.AsArray()
	assert.True(t, ok)
	got[0] = Int(99)
	assert.True(t, a.Equal(b), "mutating an unpacked array must not alias the literal")
}

func TestLiteral_kinds(t *testing.T) {
	assert.Equal(t, KindInteger, Int(0).Kind())
	assert.Equal(t, KindString, Str("").Kind())
	assert.Equal(t, KindPointer, Ptr(0, 0).Kind())
	assert.Equal(t, KindArray, Arr().Kind())
	assert.Equal(t, KindUnknown, Unknown().Kind())
	assert.Equal(t, KindUnknown, Literal{}.Kind(), "the zero literal is Unknown")

	n, ok := Int(7).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)
	_, ok = Str("7").AsInt()
	assert.False(t, ok)
}

func TestLiteral_truthy(t *testing.T) {
	assert.True(t, Int(-1).Truthy())
	assert.True(t, Int(5).Truthy())
	assert.False(t, Int(0).Truthy())
	assert.True(t, Str("").Truthy())
	assert.False(t, Ptr(0, 0).Truthy())
	assert.False(t, Arr(Int(1)).Truthy())
	assert.False(t, Unknown().Truthy())
}
