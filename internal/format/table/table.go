// Package table lays out rows of plain text in aligned columns.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const defaultGap = 2

// Column configures one column of a Layout.
type Column struct {
	Align Alignment
	// MaxWidth cuts longer cells with an ellipsis; zero means no limit.
	MaxWidth int
}

// Layout describes how Format arranges cells. Columns beyond len(Columns)
// are left aligned and unlimited.
type Layout struct {
	Columns []Column
	// Gap is the number of spaces between columns; zero means two.
	Gap int
}

// Format returns one line per row with every column as wide as its widest
// cell. Rows may have different lengths; missing cells are blank. Widths are
// measured in terminal cells and trailing padding is trimmed.
func (l Layout) Format(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	cells := make([][]string, len(rows))
	var widths []int
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for c, cell := range row {
			cell = l.column(c).fit(cell)
			cells[i][c] = cell
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	gap := l.Gap
	if gap <= 0 {
		gap = defaultGap
	}
	sep := strings.Repeat(" ", gap)
	out := make([]string, len(cells))
	for i, row := range cells {
		var b strings.Builder
		for c, width := range widths {
			if c > 0 {
				b.WriteString(sep)
			}
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			pad := strings.Repeat(" ", width-runewidth.StringWidth(cell))
			if l.column(c).Align == AlignRight {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Format lays out rows with the given per-column alignments.
func Format(rows [][]string, alignments []Alignment) []string {
	l := Layout{Columns: make([]Column, len(alignments))}
	for i, a := range alignments {
		l.Columns[i].Align = a
	}
	return l.Format(rows)
}

func (l Layout) column(c int) Column {
	if c < len(l.Columns) {
		return l.Columns[c]
	}
	return Column{}
}

func (c Column) fit(cell string) string {
	if c.MaxWidth <= 0 || runewidth.StringWidth(cell) <= c.MaxWidth {
		return cell
	}
	if c.MaxWidth == 1 {
		return truncate.String(cell, 1)
	}
	return truncate.StringWithTail(cell, uint(c.MaxWidth), "…")
}
