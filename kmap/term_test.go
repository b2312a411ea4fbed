package kmap

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerm(t *testing.T) {
	g, err := BuildGrid(tableOf(4, func(int) bool { return true }))
	require.NoError(t, err)
	names := []string{"a", "b", "c", "d"}
	tests := []struct {
		row, col, height, width int
		want                    string
		exact                   bool
	}{
		{0, 0, 4, 4, "1", true},
		{0, 0, 1, 1, "~a & ~b & ~c & ~d", true},
		{1, 1, 1, 1, "~a & b & ~c & d", true},
		{0, 0, 1, 4, "~a & ~b", true},
		{0, 1, 4, 2, "d", true},
		{1, 0, 2, 4, "b", true},
		{0, 1, 2, 2, "~a & d", true},
	}
	for _, tt := range tests {
		pg := newPointGroup(tt.row, tt.col, tt.height, tt.width, g.Rows(), g.Cols())
		term := pg.Term(g)
		assert.Equal(t, tt.want, term.Format(names), "group %v", pg)
		assert.Equal(t, tt.exact, term.Exact, "group %v", pg)
	}
}

func TestTermInexact(t *testing.T) {
	// Columns 1 to 4 of an 8-column map hold Gray codes 001, 011, 010 and 110.
	g, err := BuildGrid(tableOf(6, func(int) bool { return true }))
	require.NoError(t, err)
	pg := newPointGroup(0, 1, 1, 4, g.Rows(), g.Cols())
	term := pg.Term(g)
	assert.False(t, term.Exact)
	assert.Equal(t, "~x0 & ~x1 & ~x2", term.String())
}

func TestTermCoversGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		nbVars := 2 + rng.Intn(6)
		tbl := tableOf(nbVars, func(int) bool { return rng.Intn(2) == 0 })
		g, err := BuildGrid(tbl)
		require.NoError(t, err)
		for _, pg := range Groupings(g) {
			term := pg.Term(g)
			inGroup := make(map[uint]bool)
			for _, p := range pg.Points() {
				code := g[p.Row][p.Col].GrayCode
				inGroup[code] = true
				require.True(t, term.Covers(code), "term %v does not cover cell %d of its group", term, code)
			}
			if !term.Exact {
				continue
			}
			for idx := range tbl {
				covered := term.Covers(uint(idx))
				require.Equal(t, inGroup[uint(idx)], covered, "term %v, index %d", term, idx)
				if covered {
					require.True(t, tbl[idx], "exact term %v covers false index %d", term, idx)
				}
			}
		}
	}
}

func TestFormatUnnamed(t *testing.T) {
	term := Term{Literals: []Literal{{Var: 0}, {Var: 2, Negated: true}}}
	assert.Equal(t, "a & ~x2", term.Format([]string{"a"}))
}

func ExamplePointGroup_Term() {
	// a | b over variables a and b.
	g, _ := BuildGrid(boolTable{false, true, true, true})
	for _, pg := range Groupings(g) {
		if pg.Row() == 1 {
			fmt.Println(pg.Term(g).Format([]string{"a", "b"}))
		}
	}
	// Output: a
}
