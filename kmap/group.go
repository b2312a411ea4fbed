package kmap

import (
	"fmt"
	"strings"
)

// A Point is the position of a cell in a Grid.
type Point struct {
	Row int
	Col int
}

// A PointGroup is a rectangle of cells in a Grid.
// It is a value: the list of covered points is computed when it is created and never modified.
type PointGroup struct {
	row, col      int // Top-left corner
	height, width int
	gridH, gridW  int // Dimensions of the enclosing grid
	points        []Point
}

func newPointGroup(row, col, height, width, gridH, gridW int) PointGroup {
	points := make([]Point, 0, height*width)
	for r := row; r < row+height; r++ {
		for c := col; c < col+width; c++ {
			points = append(points, Point{Row: r, Col: c})
		}
	}
	return PointGroup{
		row:    row,
		col:    col,
		height: height,
		width:  width,
		gridH:  gridH,
		gridW:  gridW,
		points: points,
	}
}

// Row returns the row of the top-left corner of the group.
func (pg PointGroup) Row() int { return pg.row }

// Col returns the column of the top-left corner of the group.
func (pg PointGroup) Col() int { return pg.col }

// Height returns the number of rows covered by the group.
func (pg PointGroup) Height() int { return pg.height }

// Width returns the number of columns covered by the group.
func (pg PointGroup) Width() int { return pg.width }

// GridSize returns the number of rows and columns of the grid the group was found in.
func (pg PointGroup) GridSize() (rows, cols int) { return pg.gridH, pg.gridW }

// Points returns the positions of all cells covered by the group, row by row.
func (pg PointGroup) Points() []Point {
	res := make([]Point, len(pg.points))
	copy(res, pg.points)
	return res
}

// Contains returns true iff the cell at the given position is covered by the group.
func (pg PointGroup) Contains(row, col int) bool {
	return row >= pg.row && row < pg.row+pg.height && col >= pg.col && col < pg.col+pg.width
}

// splitWidth returns two groups of the given width that, together, cover pg.
// They overlap when 2*width > pg.width.
func (pg PointGroup) splitWidth(width int) (PointGroup, PointGroup) {
	shift := pg.width - width
	g1 := newPointGroup(pg.row, pg.col, pg.height, width, pg.gridH, pg.gridW)
	g2 := newPointGroup(pg.row, pg.col+shift, pg.height, width, pg.gridH, pg.gridW)
	return g1, g2
}

// splitHeight is the vertical counterpart of splitWidth.
func (pg PointGroup) splitHeight(height int) (PointGroup, PointGroup) {
	shift := pg.height - height
	g1 := newPointGroup(pg.row, pg.col, height, pg.width, pg.gridH, pg.gridW)
	g2 := newPointGroup(pg.row+shift, pg.col, height, pg.width, pg.gridH, pg.gridW)
	return g1, g2
}

func (pg PointGroup) String() string {
	strs := make([]string, len(pg.points))
	for i, p := range pg.points {
		strs[i] = fmt.Sprintf("(%d, %d)", p.Row, p.Col)
	}
	return "[" + strings.Join(strs, ", ") + "]"
}
