package bf

import "strings"

// Precedence is the binding strength of an operator.
// Operators with a higher precedence are applied first.
type Precedence int

// Available precedences, from loosest to tightest.
const (
	PrecZero Precedence = iota
	PrecLow
	PrecMedium
	PrecHigh
)

// An Operator describes one of the connectors that can appear in an expression.
type Operator struct {
	Name       string     // Human-readable name, e.g "xnor"
	Precedence Precedence // Binding strength
	Unary      bool       // Only "not" is unary
	aliases    []string
	apply      func(a, b bool) bool
}

// Aliases returns all the symbols that denote the operator in an expression.
func (op *Operator) Aliases() []string {
	res := make([]string, len(op.aliases))
	copy(res, op.aliases)
	return res
}

// Apply returns the result of the operator on the given operands.
// b is ignored for unary operators.
func (op *Operator) Apply(a, b bool) bool {
	return op.apply(a, b)
}

func (op *Operator) String() string {
	return op.Name + " (" + strings.Join(op.aliases, ", ") + ")"
}

// The operators understood by Parse.
var (
	OpNot = &Operator{
		Name: "not", Precedence: PrecHigh, Unary: true,
		aliases: []string{"not", "NOT", "~", "!"},
		apply:   func(a, _ bool) bool { return !a },
	}
	OpXor = &Operator{
		Name: "xor", Precedence: PrecMedium,
		aliases: []string{"xor", "XOR"},
		apply:   func(a, b bool) bool { return a != b },
	}
	OpXnor = &Operator{
		Name: "xnor/iff", Precedence: PrecMedium,
		aliases: []string{"xnor", "XNOR", "nxor", "NXOR", "iff", "<->"},
		apply:   func(a, b bool) bool { return a == b },
	}
	OpAnd = &Operator{
		Name: "and", Precedence: PrecLow,
		aliases: []string{"and", "AND", "&&", "&", "/\\"},
		apply:   func(a, b bool) bool { return a && b },
	}
	OpNand = &Operator{
		Name: "nand", Precedence: PrecLow,
		aliases: []string{"nand", "NAND"},
		apply:   func(a, b bool) bool { return !(a && b) },
	}
	OpOr = &Operator{
		Name: "or", Precedence: PrecZero,
		aliases: []string{"or", "OR", "||", "|", "\\/"},
		apply:   func(a, b bool) bool { return a || b },
	}
	OpNor = &Operator{
		Name: "nor", Precedence: PrecZero,
		aliases: []string{"nor", "NOR"},
		apply:   func(a, b bool) bool { return !(a || b) },
	}
)

// schema lists all operators, in the order they are looked for.
var schema = [...]*Operator{OpXnor, OpXor, OpNor, OpNand, OpAnd, OpOr, OpNot}

// symbols associates each alias with its operator. It is filled once, at init time, and never modified.
var symbols = make(map[string]*Operator)

func init() {
	for _, op := range schema {
		for _, alias := range op.aliases {
			symbols[alias] = op
		}
	}
}

// Operators returns the list of available operators.
func Operators() []*Operator {
	res := make([]*Operator, len(schema))
	copy(res, schema[:])
	return res
}

// Lookup returns the operator denoted by the given symbol, if any.
func Lookup(symbol string) (*Operator, bool) {
	op, ok := symbols[symbol]
	return op, ok
}

// isSymbolPrefix returns true iff s is the beginning of a non-alphanumeric alias.
func isSymbolPrefix(s string) bool {
	for alias := range symbols {
		if strings.HasPrefix(alias, s) {
			return true
		}
	}
	return false
}
