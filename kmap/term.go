package kmap

import (
	"math/bits"
	"strconv"
	"strings"
)

// A Literal is a possibly negated input variable.
// Var is the position of the variable, 0 being the most significant bit of a truth table index.
type Literal struct {
	Var     int
	Negated bool
}

// A Term is a conjunction of literals, i.e the product term a group of cells stands for.
type Term struct {
	Literals []Literal // Sorted by variable position
	// Exact is true iff the term is satisfied by exactly the cells of the group.
	// Without wraparound, some power-of-2 rectangles span a set of Gray codes that is not a sub-cube,
	// e.g columns 1 to 4 of an 8-column map; their term is then the smallest one that covers them.
	Exact bool
	mask  uint // Bits fixed by the term
	value uint // Value of the fixed bits
}

// Term returns the product term of the cells of pg, g being the grid pg was found in.
func (pg PointGroup) Term(g Grid) Term {
	n := g.NumInputs()
	all := uint(1)<<uint(n) - 1
	ones, zeros := all, all
	for _, p := range pg.points {
		code := g[p.Row][p.Col].GrayCode
		ones &= code
		zeros &= ^code
	}
	mask := ones | zeros
	free := n - bits.OnesCount(mask)
	t := Term{
		Exact: 1<<uint(free) == pg.height*pg.width,
		mask:  mask,
		value: ones,
	}
	for v := 0; v < n; v++ {
		bit := uint(1) << uint(n-1-v)
		if mask&bit != 0 {
			t.Literals = append(t.Literals, Literal{Var: v, Negated: ones&bit == 0})
		}
	}
	return t
}

// Covers returns true iff the input assignment encoded by index satisfies the term.
func (t Term) Covers(index uint) bool {
	return index&t.mask == t.value
}

// Format returns a human-readable version of the term, using the given variable names.
// Variables without a name are called x0, x1, and so on.
// The empty term, satisfied by every assignment, is written "1".
func (t Term) Format(names []string) string {
	if len(t.Literals) == 0 {
		return "1"
	}
	strs := make([]string, len(t.Literals))
	for i, l := range t.Literals {
		name := "x" + strconv.Itoa(l.Var)
		if l.Var < len(names) {
			name = names[l.Var]
		}
		if l.Negated {
			name = "~" + name
		}
		strs[i] = name
	}
	return strings.Join(strs, " & ")
}

func (t Term) String() string {
	return t.Format(nil)
}
