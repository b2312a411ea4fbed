package render

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/crillab/kmap/kmap"
)

// Report is the JSON representation of a Karnaugh map and its groupings.
type Report struct {
	Vars      []string      `json:"vars"`
	RowLabels []string      `json:"row_labels"`
	ColLabels []string      `json:"col_labels"`
	Codes     [][]uint      `json:"codes"`
	Values    [][]int       `json:"values"`
	Groups    []GroupReport `json:"groups"`
}

// GroupReport is the JSON representation of a grouping.
type GroupReport struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Term   string `json:"term"`
	Exact  bool   `json:"exact"`
}

// NewReport gathers the content of g and its groupings.
func NewReport(g kmap.Grid, groups []kmap.PointGroup, vars []string) Report {
	all := names(vars, g.NumInputs())
	r := Report{
		Vars:      all,
		RowLabels: rowLabels(g),
		ColLabels: colLabels(g),
		Codes:     make([][]uint, g.Rows()),
		Values:    make([][]int, g.Rows()),
		Groups:    make([]GroupReport, 0, len(groups)),
	}
	for i, row := range g {
		r.Codes[i] = make([]uint, len(row))
		r.Values[i] = make([]int, len(row))
		for j, cell := range row {
			r.Codes[i][j] = cell.GrayCode
			if cell.Value {
				r.Values[i][j] = 1
			}
		}
	}
	for _, pg := range sortGroups(groups) {
		term := pg.Term(g)
		r.Groups = append(r.Groups, GroupReport{
			Row:    pg.Row(),
			Col:    pg.Col(),
			Height: pg.Height(),
			Width:  pg.Width(),
			Term:   term.Format(all),
			Exact:  term.Exact,
		})
	}
	return r
}

// JSON writes on w the report of g and its groupings.
func JSON(w io.Writer, g kmap.Grid, groups []kmap.PointGroup, vars []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(NewReport(g, groups, vars)), "could not write JSON report")
}
