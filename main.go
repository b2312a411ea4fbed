package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/kmap/bf"
	"github.com/crillab/kmap/kmap"
	"github.com/crillab/kmap/render"
)

type options struct {
	file    string
	format  string
	html    string
	workers int
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "kmap [flags] EXPR...",
		Short: "Draw the Karnaugh map of boolean functions",
		Long: `kmap evaluates each given boolean expression, lays its truth table on a
Karnaugh map and lists the rectangular groupings of true cells.

        $ kmap 'a & b | ~c & d'
        $ kmap -o json -f exprs.txt
        $ kmap --html map.html 'a xor b xor c'
        `,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), out, opts, args)
			if err != nil {
				log.Error(err.Error())
			}
			return err
		},
	}
	rootCmd.SilenceErrors = true

	rootCmd.Flags().StringVarP(&opts.file, "file", "f", "", "read expressions from the given file, one per line")
	rootCmd.Flags().StringVarP(&opts.format, "format", "o", "text", "output format: text or json")
	rootCmd.Flags().StringVar(&opts.html, "html", "", "write an HTML heatmap of the first expression to the given file")
	rootCmd.Flags().IntVarP(&opts.workers, "workers", "j", 0, "maximum number of maps computed concurrently, 0 for no limit")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")

	return rootCmd
}

// A job is an expression to draw, along with its evaluated truth table.
type job struct {
	expr  string
	table *bf.TruthTable
}

func run(ctx context.Context, out io.Writer, opts options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.format != "text" && opts.format != "json" {
		return errors.Errorf("invalid output format %q, expected text or json", opts.format)
	}
	exprs := args
	if opts.file != "" {
		fromFile, err := readExprsFile(opts.file)
		if err != nil {
			return err
		}
		exprs = append(fromFile, exprs...)
	}
	if len(exprs) == 0 {
		return errors.New("no expression given")
	}

	jobs := make([]job, len(exprs))
	tables := make([]kmap.TruthTable, len(exprs))
	for i, expr := range exprs {
		f, err := bf.ParseString(expr)
		if err != nil {
			return errors.Wrapf(err, "could not parse expression %q", expr)
		}
		tbl, err := bf.Evaluate(f)
		if err != nil {
			return errors.Wrapf(err, "could not evaluate expression %q", expr)
		}
		log.WithFields(log.Fields{
			"expr":   expr,
			"vars":   tbl.NumInputs(),
			"models": tbl.NbTrue(),
		}).Debug("evaluated expression")
		jobs[i] = job{expr: expr, table: tbl}
		tables[i] = tbl
	}

	results, err := kmap.ComputeAll(ctx, tables, opts.workers)
	if err != nil {
		return errors.Wrap(err, "could not compute Karnaugh maps")
	}

	for i, res := range results {
		j := jobs[i]
		log.WithFields(log.Fields{"expr": j.expr, "groups": len(res.Groups)}).Debug("computed groupings")
		if err := write(out, opts.format, j, res); err != nil {
			return err
		}
	}

	if opts.html != "" {
		if err := writeHTML(opts.html, jobs[0], results[0]); err != nil {
			return err
		}
		log.Infof("wrote heatmap of %q to %s", jobs[0].expr, opts.html)
	}
	return nil
}

func write(out io.Writer, format string, j job, res kmap.Result) error {
	vars := j.table.Vars()
	if format == "json" {
		return render.JSON(out, res.Grid, res.Groups, vars)
	}
	if _, err := fmt.Fprintf(out, "# %s\n", j.expr); err != nil {
		return errors.Wrap(err, "could not write output")
	}
	if err := render.Text(out, res.Grid, vars); err != nil {
		return err
	}
	if err := render.Groups(out, res.Grid, res.Groups, vars); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return errors.Wrap(err, "could not write output")
}

func writeHTML(path string, j job, res kmap.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "could not close %q", path)
		}
	}()
	title := "Karnaugh map of " + j.expr
	return render.HTML(f, res.Grid, res.Groups, j.table.Vars(), title)
}

func readExprsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	exprs, err := readExprs(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %q", path)
	}
	return exprs, nil
}

// readExprs returns the expressions in r, one per line.
// Blank lines and lines starting with '#' are ignored.
func readExprs(r io.Reader) ([]string, error) {
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, sc.Err()
}
