package spacing

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type elementKind int

const (
	elementColumn elementKind = iota
	elementGap
)

// Element is one piece of a table layout: a column or a gap between columns.
type Element struct {
	kind  elementKind
	width int
}

// Column adds a column. Every column but the last is padded to the widest
// cell it holds.
func Column() Element {
	return Element{kind: elementColumn}
}

// MinSpacing adds n spaces after the preceding column. Negative values are
// treated as 0.
func MinSpacing(n int) Element {
	return Element{kind: elementGap, width: max(n, 0)}
}

// Formatter renders rows as aligned columns using terminal display width.
type Formatter struct {
	layout []Element
	cols   int
	rows   [][]string
	widths []int
}

// NewFormatter creates a Formatter for the given layout, e.g.
// NewFormatter(Column(), MinSpacing(2), Column()).
func NewFormatter(layout ...Element) *Formatter {
	cols := 0
	for _, elem := range layout {
		if elem.kind == elementColumn {
			cols++
		}
	}
	return &Formatter{layout: layout, cols: cols, widths: make([]int, cols)}
}

// AddRows appends rows. Rows whose cell count does not match the layout are
// rejected and reported together.
func (f *Formatter) AddRows(rows ...[]string) error {
	var errs []error
	for _, row := range rows {
		if len(row) != f.cols {
			errs = append(errs, fmt.Errorf("row %v has incorrect column count, expected %d but got %d", row, f.cols, len(row)))
			continue
		}
		for i, cell := range row {
			f.widths[i] = max(f.widths[i], runewidth.StringWidth(cell))
		}
		f.rows = append(f.rows, row)
	}
	return errors.Join(errs...)
}

// Format writes one line per row to w. Trailing spaces are trimmed.
func (f *Formatter) Format(w io.Writer) error {
	for _, row := range f.rows {
		if _, err := fmt.Fprintln(w, f.line(row)); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) line(row []string) string {
	var b strings.Builder
	col := 0
	for _, elem := range f.layout {
		switch elem.kind {
		case elementColumn:
			if col == f.cols-1 {
				b.WriteString(row[col])
			} else {
				b.WriteString(runewidth.FillRight(row[col], f.widths[col]))
			}
			col++
		case elementGap:
			b.WriteString(strings.Repeat(" ", elem.width))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
