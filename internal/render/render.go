// Package render prints calendar grids as text tables.
//
// Cell markers:
//
//	[n]  selected date, range begin or range end
//	~n   inside the range or its hover preview
//	n*   today
//	(n)  disabled
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/tartampluch/go-rangepicker/internal/calendar"
	"github.com/tartampluch/go-rangepicker/internal/config"
)

// ErrEmptyGrid is returned for a grid without rows or columns.
var ErrEmptyGrid = errors.New(config.ErrEmptyGrid)

// Grid writes g as a table. caption is printed under the table when not empty.
func Grid(w io.Writer, g calendar.Grid, caption string) error {
	if g.NumCols == 0 || len(g.Rows) == 0 {
		return fmt.Errorf("%s: %w", config.ErrRender, ErrEmptyGrid)
	}

	tw := tablewriter.NewWriter(w)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	if caption != "" {
		tw.SetCaption(true, caption)
	}

	if g.View == calendar.ViewMonth {
		header := make([]string, len(g.Weekdays))
		for i, wd := range g.Weekdays {
			header[i] = wd.Narrow
		}
		tw.SetHeader(header)
	}

	for _, row := range rows(g) {
		tw.Append(row)
	}
	tw.Render()
	return nil
}

// rows lays the cells out on NumCols columns, with the label either in the
// leading blank cells or on a row of its own.
func rows(g calendar.Grid) [][]string {
	var out [][]string

	if g.Label != "" && !g.LabelInFirstRow() {
		out = append(out, padded(g.NumCols, []string{g.Label}))
	}

	for i, row := range g.Rows {
		line := make([]string, 0, g.NumCols)
		if i == 0 && g.FirstRowOffset > 0 {
			lead := make([]string, g.FirstRowOffset)
			if g.LabelInFirstRow() {
				lead[0] = g.Label
			}
			line = append(line, lead...)
		}
		for _, c := range row {
			line = append(line, mark(g, c))
		}
		out = append(out, padded(g.NumCols, line))
	}
	return out
}

func padded(n int, line []string) []string {
	for len(line) < n {
		line = append(line, "")
	}
	return line
}

func mark(g calendar.Grid, c calendar.Cell) string {
	s := c.DisplayValue
	h := g.Highlight
	v := c.Value

	switch {
	case v == g.SelectedValue, h.RangeMode && (h.IsBegin(v) || h.IsEnd(v)):
		s = "[" + s + "]"
	case h.IsSemiSelected(v), h.IsBetweenOverAndBegin(v):
		s = "~" + s
	}
	if v == g.TodayValue {
		s += "*"
	}
	if !c.Enabled {
		s = "(" + s + ")"
	}
	return s
}
