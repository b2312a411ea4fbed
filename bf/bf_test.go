package bf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	f := And(Or(Var("a"), Not(Var("b"))), Not(Var("c")), Xor(Var("d"), True))
	const expected = "and(or(a, not(b)), not(c), xor(d, 1))"
	if f.String() != expected {
		t.Errorf("string representation of formula not as expected: wanted %q, got %q", expected, f.String())
	}
}

func TestEval(t *testing.T) {
	a, b := Var("a"), Var("b")
	tests := []struct {
		f    Formula
		want [4]bool // Results for (a, b) = 00, 01, 10, 11
	}{
		{And(a, b), [4]bool{false, false, false, true}},
		{Or(a, b), [4]bool{false, true, true, true}},
		{Xor(a, b), [4]bool{false, true, true, false}},
		{Xnor(a, b), [4]bool{true, false, false, true}},
		{Eq(a, b), [4]bool{true, false, false, true}},
		{Nand(a, b), [4]bool{true, true, true, false}},
		{Nor(a, b), [4]bool{true, false, false, false}},
		{Implies(a, b), [4]bool{true, true, false, true}},
		{Not(a), [4]bool{true, true, false, false}},
		{And(), [4]bool{true, true, true, true}},
		{Or(), [4]bool{false, false, false, false}},
		{Or(a, True), [4]bool{true, true, true, true}},
		{And(b, False), [4]bool{false, false, false, false}},
	}
	for _, tt := range tests {
		for i, want := range tt.want {
			model := map[string]bool{"a": i&2 != 0, "b": i&1 != 0}
			assert.Equal(t, want, tt.f.Eval(model), "%v under %v", tt.f, model)
		}
	}
}

func TestEvalUnbound(t *testing.T) {
	assert.Panics(t, func() { And(Var("a"), Var("b")).Eval(map[string]bool{"a": true}) })
}

func TestVars(t *testing.T) {
	f := Or(And(Var("c"), Not(Var("a"))), Xor(Var("a"), Var("b")), True, Var("c"))
	assert.Equal(t, []string{"c", "a", "b"}, Vars(f))
	assert.Empty(t, Vars(And(True, Not(False))))
}

func TestSchema(t *testing.T) {
	ops := Operators()
	assert.Len(t, ops, 7)
	ops[0] = nil
	assert.NotNil(t, Operators()[0], "schema must not be modifiable through Operators")

	for _, op := range Operators() {
		for _, alias := range op.Aliases() {
			found, ok := Lookup(alias)
			if assert.True(t, ok, "alias %q", alias) {
				assert.Same(t, op, found, "alias %q", alias)
			}
		}
	}
	_, ok := Lookup("->")
	assert.False(t, ok)

	assert.True(t, OpNot.Unary)
	assert.Equal(t, PrecHigh, OpNot.Precedence)
	assert.Equal(t, PrecMedium, OpXnor.Precedence)
	assert.Equal(t, PrecLow, OpNand.Precedence)
	assert.Equal(t, PrecZero, OpNor.Precedence)
	assert.True(t, OpNand.Apply(true, false))
	assert.Equal(t, "and (and, AND, &&, &, /\\)", OpAnd.String())
}

func ExampleVars() {
	f, _ := ParseString("b & ~a | c xor b")
	fmt.Println(Vars(f))
	// Output: [b a c]
}
