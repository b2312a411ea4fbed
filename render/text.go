// Package render formats Karnaugh maps and their groupings for display.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/crillab/kmap/bitutil"
	"github.com/crillab/kmap/kmap"
)

// axes returns the number of Gray code bits given by the row and by the column of a cell of g.
func axes(g kmap.Grid) (rowBits, colBits int) {
	n := g.NumInputs()
	return n / 2, n - n/2
}

// names returns n variable names, taken from vars when available.
func names(vars []string, n int) []string {
	res := make([]string, n)
	for i := range res {
		if i < len(vars) {
			res[i] = vars[i]
		} else {
			res[i] = fmt.Sprintf("x%d", i)
		}
	}
	return res
}

// rowLabels and colLabels return the Gray codes of the rows and columns of g, in binary.
func rowLabels(g kmap.Grid) []string {
	rowBits, colBits := axes(g)
	res := make([]string, g.Rows())
	for r := range res {
		res[r] = bitutil.BitString(g[r][0].GrayCode>>uint(colBits), rowBits)
	}
	return res
}

func colLabels(g kmap.Grid) []string {
	_, colBits := axes(g)
	mask := uint(1)<<uint(colBits) - 1
	res := make([]string, g.Cols())
	for c := range res {
		res[c] = bitutil.BitString(g[0][c].GrayCode&mask, colBits)
	}
	return res
}

// Text writes g on w as a table of 0s and 1s, with the Gray codes of rows and columns as headers.
// The top-left corner names the row variables and the column variables, e.g "ab\cd".
func Text(w io.Writer, g kmap.Grid, vars []string) error {
	if g.Rows() == 0 {
		return nil
	}
	rowBits, colBits := axes(g)
	all := names(vars, rowBits+colBits)
	corner := strings.Join(all[:rowBits], "") + `\` + strings.Join(all[rowBits:], "")
	labelW := max(len(corner), rowBits)
	cellW := max(colBits, 1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", labelW, corner)
	for _, l := range colLabels(g) {
		fmt.Fprintf(&sb, " %*s", cellW, l)
	}
	sb.WriteByte('\n')
	for r, l := range rowLabels(g) {
		fmt.Fprintf(&sb, "%*s", labelW, l)
		for c := 0; c < g.Cols(); c++ {
			v := "0"
			if g.Value(r, c) {
				v = "1"
			}
			fmt.Fprintf(&sb, " %*s", cellW, v)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "could not write Karnaugh map")
}

// sortGroups returns a copy of groups sorted by position, then by size.
func sortGroups(groups []kmap.PointGroup) []kmap.PointGroup {
	res := make([]kmap.PointGroup, len(groups))
	copy(res, groups)
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		switch {
		case a.Row() != b.Row():
			return a.Row() < b.Row()
		case a.Col() != b.Col():
			return a.Col() < b.Col()
		case a.Height() != b.Height():
			return a.Height() > b.Height()
		default:
			return a.Width() > b.Width()
		}
	})
	return res
}

// Groups writes on w one line per grouping, with its position, its size and its term.
func Groups(w io.Writer, g kmap.Grid, groups []kmap.PointGroup, vars []string) error {
	all := names(vars, g.NumInputs())
	var sb strings.Builder
	for _, pg := range sortGroups(groups) {
		term := pg.Term(g)
		fmt.Fprintf(&sb, "rows %d-%d, cols %d-%d (%dx%d): %s",
			pg.Row(), pg.Row()+pg.Height()-1, pg.Col(), pg.Col()+pg.Width()-1,
			pg.Height(), pg.Width(), term.Format(all))
		if !term.Exact {
			sb.WriteString(" (not a sub-cube)")
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "could not write groupings")
}
