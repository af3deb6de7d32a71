package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bakery-management/pkg/pricing"
)

// Render draws the window: heading, both grids and the grand total label.
// Rows are numbered from 1 so the operator can pick them from the menu.
func (v *View) Render(w io.Writer) error {
	s := v.Snapshot()

	bw := &errWriter{w: w}
	bw.printf("%s\n%s\n\n", s.Title, strings.Repeat("=", len(s.Title)))
	bw.printf("%s\n\n", center(s.Heading, len(s.Title)))

	for _, g := range []struct {
		title string
		rows  []Row
	}{
		{TitleRegular, s.Regular},
		{TitleSpecial, s.Special},
	} {
		bw.printf("%s\n", center(g.title, len(s.Title)))
		tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "#\t%s\t%s\t%s\t%s\n", ColumnItemName, ColumnUnitPrice, ColumnAvailableQty, ColumnPurchaseQty)
		for i, r := range g.rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", i+1, r.Name, pricing.FormatAmount(r.UnitPrice), r.Available, r.Purchase)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		bw.printf("\n")
	}

	bw.printf("%s\n", center(s.TotalLabel, len(s.Title)))
	return bw.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
