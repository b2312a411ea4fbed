package bf

import (
	"fmt"
	"strings"
	"testing"
)

// To each expression, associate the string representation of the expected formula.
var exprToFormula = map[string]string{
	"foo":                  "foo",
	"~foo":                 "not(foo)",
	"!~foo":                "not(not(foo))",
	"not foo":              "not(foo)",
	"(foo)":                "foo",
	"a | b":                "or(a, b)",
	"a || b":               "or(a, b)",
	"a or b":               "or(a, b)",
	"a \\/ b":              "or(a, b)",
	"a & b":                "and(a, b)",
	"a&&b":                 "and(a, b)",
	"a AND b":              "and(a, b)",
	"a /\\ b":              "and(a, b)",
	"a & b & c":            "and(a, b, c)",
	"a & (b & c) & d":      "and(a, and(b, c), d)",
	"a xor b":              "xor(a, b)",
	"a <-> b":              "xnor(a, b)",
	"a iff b":              "xnor(a, b)",
	"a nand b nand c":      "nand(nand(a, b), c)",
	"a nor b":              "nor(a, b)",
	"a | b & c":            "or(a, and(b, c))",
	"a & b xor c":          "and(a, xor(b, c))",
	"~a xor b":             "xor(not(a), b)",
	"~(a | b)":             "not(or(a, b))",
	"a | b nor c":          "nor(or(a, b), c)",
	"a & 1 | 0":            "or(and(a, 1), 0)",
	"(a|~b|c) & ~(a|~b|c)": "and(or(a, not(b), c), not(or(a, not(b), c)))",
	"in_1 & in_2":          "and(in_1, in_2)",
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToFormula {
		f, err := ParseString(expr)
		if err != nil {
			t.Errorf("could not parse expression %q: %v", expr, err)
		} else if f.String() != expected {
			t.Errorf("for expression %q, expected formula %q, got %q", expr, expected, f.String())
		}
	}
}

// To each invalid expression, associate a part of the expected error message.
var invalidExprs = map[string]string{
	"":         "empty expression",
	"   ":      "empty expression",
	"a &":      "found EOF",
	"& a":      "unexpected operator",
	"a b":      "unexpected token \"b\"",
	"(a | b":   "expected closing parenthesis",
	"(a | b c": "expected closing parenthesis, found \"c\"",
	"a | )":    "unexpected token \")\"",
	"a <- b":   "unexpected token \"<-\"",
	"a & 2":    "unexpected token \"2\"",
	"a # b":    "unexpected token \"#\"",
	"a &&& b":  "unexpected operator",
	"~":        "found EOF",
}

func TestParseErrors(t *testing.T) {
	for expr, msg := range invalidExprs {
		_, err := ParseString(expr)
		if err == nil {
			t.Errorf("expression %q should not have been parsed", expr)
		} else if !strings.Contains(err.Error(), msg) {
			t.Errorf("for expression %q, expected error containing %q, got %q", expr, msg, err.Error())
		}
	}
}

func ExampleParse() {
	f, err := Parse(strings.NewReader("a & ~(b | c)"))
	if err != nil {
		fmt.Printf("could not parse expression: %v", err)
		return
	}
	fmt.Println(f)
	// Output: and(a, not(or(b, c)))
}
