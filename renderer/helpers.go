package renderer

import (
	"slices"
	"strings"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

// tableSet converts a report table to a markdown table. Columns whose index
// is in 'right' are right aligned, the others left aligned.
func tableSet(t *holdings.Table, right ...int) md.TableSet {
	set := md.TableSet{
		Header:    slices.Clone(t.Columns),
		Alignment: make([]md.TableAlignment, len(t.Columns)),
		Rows:      make([][]string, 0, t.Len()),
	}
	for j := range t.Columns {
		set.Alignment[j] = md.AlignLeft
		if slices.Contains(right, j) {
			set.Alignment[j] = md.AlignRight
		}
	}
	for i := range t.Rows {
		row := make([]string, len(t.Columns))
		for j := range row {
			v, _ := t.Cell(i, j)
			row[j] = escapeCell(v)
		}
		set.Rows = append(set.Rows, row)
	}
	return set
}

// escapeCell makes a text safe inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
