package holdings

import "slices"

// Table is an abstract tabular value: named columns and rows of text cells.
//
// It is both the raw form of a fund extract, before normalization, and the
// canonical output of every report. Rows can be shorter than Columns, the
// missing cells are null.
type Table struct {
	Columns []string
	Rows    [][]string
	// nulls marks cells explicitly null in the source (JSON null), indexed
	// like Rows. It is nil for most tables.
	nulls map[[2]int]bool
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row to the table.
func (t *Table) Append(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of the column named 'name', or -1.
func (t *Table) Index(name string) int {
	return slices.Index(t.Columns, name)
}

// Cell returns the cell at row i and column j and whether it holds a value.
// A cell is null if the row is too short or it was explicitly null.
func (t *Table) Cell(i, j int) (string, bool) {
	row := t.Rows[i]
	if j < 0 || j >= len(row) {
		return "", false
	}
	if t.nulls[[2]int{i, j}] {
		return "", false
	}
	return row[j], true
}

func (t *Table) setNull(i, j int) {
	if t.nulls == nil {
		t.nulls = make(map[[2]int]bool)
	}
	t.nulls[[2]int{i, j}] = true
}

// fullRow returns row i padded with empty cells up to the number of columns.
func (t *Table) fullRow(i int) []string {
	row := t.Rows[i]
	if len(row) >= len(t.Columns) {
		return row[:len(t.Columns)]
	}
	full := make([]string, len(t.Columns))
	copy(full, row)
	return full
}
