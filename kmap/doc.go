// Package kmap lays a truth table on a Karnaugh map and finds rectangular groupings of true cells.
//
// A Karnaugh map is a 2-D layout of a truth table whose rows and columns are ordered by Gray code,
// so that two cells next to each other differ in the value of exactly one input variable.
// A function over n variables is laid on a grid of 2^⌊n/2⌋ rows and 2^⌈n/2⌉ columns:
//
//	t, _ := bf.Evaluate(f)
//	grid, err := kmap.BuildGrid(t)
//	if err != nil {
//		// Less than 2 inputs: err is a *kmap.TooFewInputsError.
//	}
//	groups := kmap.Groupings(grid)
//
// Groupings first extracts every maximal rectangle made only of true cells, then splits
// those whose height or width is not a power of 2 into overlapping power-of-2 rectangles.
// The result covers every true cell and no false cell; each grouping can be turned into the
// product term it stands for with PointGroup.Term.
//
// Groupings are not reduced to a minimal cover, and the edges of the map are not considered
// adjacent to each other.
package kmap
