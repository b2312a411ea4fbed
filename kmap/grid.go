package kmap

import (
	"math/bits"

	"github.com/crillab/kmap/bitutil"
)

// A TruthTable is a fully evaluated boolean function.
// Result(i) is the value of the function for the input assignment whose binary encoding is i,
// the first input being the most significant bit. i ranges from 0 to 2^NumInputs()-1.
type TruthTable interface {
	NumInputs() int
	Result(i int) bool
}

// A Cell is a point of a Karnaugh map.
// GrayCode is not the position of the cell but the index of the truth table entry it holds,
// made of the Gray codes of its row and column.
type Cell struct {
	GrayCode uint
	Value    bool
}

// A Grid is a Karnaugh map, stored row by row.
type Grid [][]Cell

// BuildGrid lays the given truth table on a Karnaugh map.
// Moving one step along a row or a column of the returned grid changes exactly one bit of the cell's Gray code.
// It returns a *TooFewInputsError if the table has less than 2 inputs.
func BuildGrid(t TruthTable) (Grid, error) {
	n := t.NumInputs()
	if n < 2 {
		return nil, &TooFewInputsError{NumInputs: n}
	}
	rowBits := n / 2
	colBits := rowBits + n%2
	nbRows := 1 << rowBits
	nbCols := 1 << colBits
	colCodes := make([]uint, nbCols)
	for i := range colCodes {
		colCodes[i] = bitutil.Gray(uint(i))
	}
	rowCodes := colCodes[:nbRows]
	grid := make(Grid, nbRows)
	for i, rowCode := range rowCodes {
		grid[i] = make([]Cell, nbCols)
		for j, colCode := range colCodes {
			addr := bitutil.Concat(rowCode, colCode, colBits)
			grid[i][j] = Cell{GrayCode: addr, Value: t.Result(int(addr))}
		}
	}
	return grid, nil
}

// Rows returns the number of rows in g.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in g.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Value returns the value of the cell at the given position.
func (g Grid) Value(row, col int) bool {
	return g[row][col].Value
}

// NumInputs returns the number of input variables of the function laid on g.
func (g Grid) NumInputs() int {
	size := g.Rows() * g.Cols()
	if size == 0 {
		return 0
	}
	return bits.Len(uint(size)) - 1
}

