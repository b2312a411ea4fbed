package bf

import (
	"fmt"
	"strings"
)

// A Formula is any kind of boolean formula.
type Formula interface {
	String() string
	// Eval returns the value of the formula under the given model.
	// It panics if a variable of the formula has no binding in model.
	Eval(model map[string]bool) bool
	// appendVars appends to res the variables of the formula that are not in seen yet, and marks them as seen.
	appendVars(seen map[string]bool, res []string) []string
}

// Vars returns the names of the variables appearing in f, in order of first appearance.
func Vars(f Formula) []string {
	return f.appendVars(make(map[string]bool), nil)
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) String() string                                      { return "1" }
func (t trueConst) Eval(model map[string]bool) bool                     { return true }
func (t trueConst) appendVars(seen map[string]bool, res []string) []string { return res }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) String() string                                      { return "0" }
func (f falseConst) Eval(model map[string]bool) bool                     { return false }
func (f falseConst) appendVars(seen map[string]bool, res []string) []string { return res }

// Var generates a named boolean variable in a formula.
func Var(name string) Formula {
	return variable(name)
}

type variable string

func (v variable) String() string {
	return string(v)
}

func (v variable) Eval(model map[string]bool) bool {
	b, ok := model[string(v)]
	if !ok {
		panic(fmt.Errorf("model lacks binding for variable %s", string(v)))
	}
	return b
}

func (v variable) appendVars(seen map[string]bool, res []string) []string {
	if seen[string(v)] {
		return res
	}
	seen[string(v)] = true
	return append(res, string(v))
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) String() string {
	return "not(" + n[0].String() + ")"
}

func (n not) Eval(model map[string]bool) bool {
	return !n[0].Eval(model)
}

func (n not) appendVars(seen map[string]bool, res []string) []string {
	return n[0].appendVars(seen, res)
}

// And generates a conjunction of subformulas.
// The conjunction of no subformula is true.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) String() string {
	return "and(" + joinFormulas(a) + ")"
}

func (a and) Eval(model map[string]bool) bool {
	for _, s := range a {
		if !s.Eval(model) {
			return false
		}
	}
	return true
}

func (a and) appendVars(seen map[string]bool, res []string) []string {
	for _, s := range a {
		res = s.appendVars(seen, res)
	}
	return res
}

// Or generates a disjunction of subformulas.
// The disjunction of no subformula is false.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) String() string {
	return "or(" + joinFormulas(o) + ")"
}

func (o or) Eval(model map[string]bool) bool {
	for _, s := range o {
		if s.Eval(model) {
			return true
		}
	}
	return false
}

func (o or) appendVars(seen map[string]bool, res []string) []string {
	for _, s := range o {
		res = s.appendVars(seen, res)
	}
	return res
}

// binary is a formula made of a binary operator other than "and" and "or".
type binary struct {
	op     *Operator
	f1, f2 Formula
}

func (b binary) String() string {
	return b.op.aliases[0] + "(" + b.f1.String() + ", " + b.f2.String() + ")"
}

func (b binary) Eval(model map[string]bool) bool {
	return b.op.Apply(b.f1.Eval(model), b.f2.Eval(model))
}

func (b binary) appendVars(seen map[string]bool, res []string) []string {
	res = b.f1.appendVars(seen, res)
	return b.f2.appendVars(seen, res)
}

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Formula) Formula {
	return binary{op: OpXor, f1: f1, f2: f2}
}

// Xnor indicates both given subformulas have the same value.
func Xnor(f1, f2 Formula) Formula {
	return binary{op: OpXnor, f1: f1, f2: f2}
}

// Eq indicates a subformula is equivalent to another one. It is the same as Xnor.
func Eq(f1, f2 Formula) Formula {
	return Xnor(f1, f2)
}

// Nand indicates the two given subformulas are not both true.
func Nand(f1, f2 Formula) Formula {
	return binary{op: OpNand, f1: f1, f2: f2}
}

// Nor indicates none of the two given subformulas is true.
func Nor(f1, f2 Formula) Formula {
	return binary{op: OpNor, f1: f1, f2: f2}
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// combine applies the binary operator op to f1 and f2.
// Successive conjunctions (resp. disjunctions) are flattened in a single one.
func combine(op *Operator, f1, f2 Formula) Formula {
	switch op {
	case OpAnd:
		if a, ok := f1.(and); ok {
			return append(a[:len(a):len(a)], f2)
		}
		return and{f1, f2}
	case OpOr:
		if o, ok := f1.(or); ok {
			return append(o[:len(o):len(o)], f2)
		}
		return or{f1, f2}
	default:
		return binary{op: op, f1: f1, f2: f2}
	}
}

func joinFormulas(fs []Formula) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = f.String()
	}
	return strings.Join(strs, ", ")
}
