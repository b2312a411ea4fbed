package kmap

import "github.com/crillab/kmap/bitutil"

// Groupings returns rectangular groups of true cells in g.
// Every true cell of g is covered by at least one group, no false cell is,
// and the height and width of every group are powers of 2.
// Groups can overlap. No particular order is guaranteed.
//
// Maximal rectangles are found with the algorithm described at
// http://www.montefiore.ulg.ac.be/~pierard/rectangles/
// and then split until their dimensions are powers of 2.
func Groupings(g Grid) []PointGroup {
	return pow2Partition(maximalRectangles(g))
}

// runLengths returns, for each cell, the number of consecutive true cells above (north) and
// below (south) it in its column, or -1 for false cells.
func runLengths(g Grid) (north, south [][]int) {
	h, w := g.Rows(), g.Cols()
	north = make([][]int, h)
	south = make([][]int, h)
	for row := range north {
		north[row] = make([]int, w)
		south[row] = make([]int, w)
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			switch {
			case !g.Value(row, col):
				north[row][col] = -1
			case row == 0:
				north[row][col] = 0
			default:
				north[row][col] = north[row-1][col] + 1
			}
		}
	}
	for row := h - 1; row >= 0; row-- {
		for col := 0; col < w; col++ {
			switch {
			case !g.Value(row, col):
				south[row][col] = -1
			case row == h-1:
				south[row][col] = 0
			default:
				south[row][col] = south[row+1][col] + 1
			}
		}
	}
	return north, south
}

// maximalRectangles returns all rectangles of true cells in g that cannot be extended in any direction.
func maximalRectangles(g Grid) []PointGroup {
	h, w := g.Rows(), g.Cols()
	if h == 0 || w == 0 {
		return nil
	}
	north, south := runLengths(g)
	var rects []PointGroup
	for col := w - 1; col >= 0; col-- {
		// A rectangle found from a given row and extending maxS rows below it,
		// or more, was already found from the last seed row below.
		maxS := h
		for row := h - 1; row >= 0; row-- {
			maxS++
			if !g.Value(row, col) || (col > 0 && g.Value(row, col-1)) {
				continue
			}
			n, s := north[row][col], south[row][col]
			width := 1
			for col+width < w && g.Value(row, col+width) {
				nextN, nextS := north[row][col+width], south[row][col+width]
				if nextN < n || nextS < s {
					if s < maxS {
						rects = append(rects, newPointGroup(row-n, col, n+s+1, width, h, w))
					}
					if nextN < n {
						n = nextN
					}
					if nextS < s {
						s = nextS
					}
				}
				width++
			}
			if s < maxS {
				rects = append(rects, newPointGroup(row-n, col, n+s+1, width, h, w))
			}
			maxS = 0
		}
	}
	return rects
}

// pow2Partition splits the given groups until their dimensions are powers of 2.
// The given slice is used as a work stack and is consumed.
func pow2Partition(stack []PointGroup) []PointGroup {
	var res []PointGroup
	for len(stack) > 0 {
		pg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case !bitutil.IsPow2(pg.width):
			g1, g2 := pg.splitWidth(bitutil.FloorPow2(pg.width))
			stack = append(stack, g1, g2)
		case !bitutil.IsPow2(pg.height):
			g1, g2 := pg.splitHeight(bitutil.FloorPow2(pg.height))
			stack = append(stack, g1, g2)
		default:
			res = append(res, pg)
		}
	}
	return res
}
