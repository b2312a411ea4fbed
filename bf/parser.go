package bf

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"
)

type parser struct {
	s     scanner.Scanner
	eof   bool             // Have we reached eof yet?
	kind  rune             // Kind of the last token read, as returned by the scanner
	token string           // Last token read
	pos   scanner.Position // Position of the last token read
}

// Parse parses the formula from the given input Reader.
// It returns the corresponding Formula.
// Formulas are written using the following operators, from lowest to highest priority
// (see Operators for the full list of accepted symbols):
//
//   - "or" ("|", "||", "\/") and "nor",
//   - "and" ("&", "&&", "/\") and "nand",
//   - "xor" and "xnor" ("iff", "<->"),
//   - "not" ("~", "!"), a unary operator.
//
// Binary operators of equal priority are applied from left to right.
// The constants 0 and 1 stand for false and true.
// Parentheses can be used to group subformulas.
func Parse(r io.Reader) (Formula, error) {
	var p parser
	p.s.Init(r)
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Error = func(*scanner.Scanner, string) {} // Invalid characters are reported as unexpected tokens
	p.scan()
	if p.eof {
		return nil, errors.New("empty expression")
	}
	f, err := p.parseBinary(PrecZero)
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, errors.Errorf("unexpected token %q at %s", p.token, p.pos)
	}
	return f, nil
}

// ParseString parses the formula written in s.
func ParseString(s string) (Formula, error) {
	return Parse(strings.NewReader(s))
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.kind = p.s.Scan()
	p.pos = p.s.Position
	if p.kind == scanner.EOF {
		p.eof = true
		p.token = ""
		return
	}
	p.token = p.s.TokenText()
	if p.kind == scanner.Ident || p.kind == scanner.Int {
		return
	}
	// Operator symbols can span several characters, e.g "<->" or "&&".
	for {
		next := p.s.Peek()
		if next == scanner.EOF || !isSymbolPrefix(p.token+string(next)) {
			return
		}
		p.token += string(p.s.Next())
	}
}

func (p *parser) parseBinary(prec Precedence) (Formula, error) {
	if prec > PrecMedium {
		return p.parseUnary()
	}
	f, err := p.parseBinary(prec + 1)
	if err != nil {
		return nil, err
	}
	for !p.eof {
		op, ok := Lookup(p.token)
		if !ok || op.Unary || op.Precedence != prec {
			break
		}
		p.scan()
		f2, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		f = combine(op, f, f2)
	}
	return f, nil
}

func (p *parser) parseUnary() (Formula, error) {
	if p.eof {
		return nil, errors.Errorf("expected expression, found EOF at %s", p.pos)
	}
	op, ok := Lookup(p.token)
	if !ok {
		return p.parseBasic()
	}
	if !op.Unary {
		return nil, errors.Errorf("unexpected operator %q at %s", p.token, p.pos)
	}
	p.scan()
	f, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Not(f), nil
}

func (p *parser) parseBasic() (Formula, error) {
	switch {
	case p.token == "(":
		open := p.pos
		p.scan()
		f, err := p.parseBinary(PrecZero)
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, errors.Errorf("expected closing parenthesis for %s, found EOF", open)
		}
		if p.token != ")" {
			return nil, errors.Errorf("expected closing parenthesis, found %q at %s", p.token, p.pos)
		}
		p.scan()
		return f, nil
	case p.kind == scanner.Int && (p.token == "0" || p.token == "1"):
		f := True
		if p.token == "0" {
			f = False
		}
		p.scan()
		return f, nil
	case p.kind == scanner.Ident:
		defer p.scan()
		return Var(p.token), nil
	default:
		return nil, errors.Errorf("unexpected token %q at %s", p.token, p.pos)
	}
}
