package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/crillab/kmap/kmap"
)

// Coverage returns, for each cell of g, the number of groupings containing it.
func Coverage(g kmap.Grid, groups []kmap.PointGroup) [][]int {
	res := make([][]int, g.Rows())
	for r := range res {
		res[r] = make([]int, g.Cols())
	}
	for _, pg := range groups {
		for _, p := range pg.Points() {
			if p.Row < len(res) && p.Col < len(res[p.Row]) {
				res[p.Row][p.Col]++
			}
		}
	}
	return res
}

// HTML writes on w a standalone HTML page displaying g as a heatmap.
// Each cell's value is the number of groupings covering it, so false cells are 0
// and cells shared between several groupings stand out.
func HTML(w io.Writer, g kmap.Grid, groups []kmap.PointGroup, vars []string, title string) error {
	if g.Rows() == 0 {
		return errors.New("cannot render an empty Karnaugh map")
	}
	rowBits, _ := axes(g)
	all := names(vars, g.NumInputs())
	rows := rowLabels(g)
	cols := colLabels(g)
	cover := Coverage(g, groups)
	// The y axis goes upward: the first row is drawn at the top.
	yLabels := make([]string, len(rows))
	for r, l := range rows {
		yLabels[len(rows)-1-r] = l
	}
	maxCount := 1
	data := make([]opts.HeatMapData, 0, g.Rows()*g.Cols())
	for r, row := range g {
		for c, cell := range row {
			n := cover[r][c]
			if n > maxCount {
				maxCount = n
			}
			data = append(data, opts.HeatMapData{
				Name:  fmt.Sprintf("m%d", cell.GrayCode),
				Value: [3]interface{}{c, len(rows) - 1 - r, n},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d groupings", len(groups))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: strings.Join(all[rowBits:], ""), Data: cols}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: strings.Join(all[:rowBits], ""), Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: []string{"#f7fbff", "#6baed6", "#08306b"}},
		}),
	)
	hm.SetXAxis(cols).AddSeries("groupings", data)
	return errors.Wrap(hm.Render(w), "could not render HTML Karnaugh map")
}
