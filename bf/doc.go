// Package bf parses and evaluates boolean formulas.
//
// Formulas can be built with the connectors of this package:
//
//	f := Or(And(Var("a"), Not(Var("b"))), Xor(Var("b"), Var("c")))
//
// or parsed from their textual form:
//
//	f, err := ParseString("a & ~b | (b xor c)")
//
// The operators accepted by the parser, their symbols and their precedences are listed in a
// fixed table available through Operators and Lookup.
//
// Evaluate computes the value of a formula for every assignment of its variables and
// returns the corresponding TruthTable, which can then be laid on a Karnaugh map by package kmap.
package bf
