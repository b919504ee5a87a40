package holdings

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// WriteTable writes a report table to 'path'. The format is given by the
// extension of 'path', CSV when there is none. It returns the path actually
// written.
func WriteTable(path string, t *Table) (string, error) {
	path, format, err := ResolveFormat(path, CSV)
	if err != nil {
		return path, err
	}
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeTable(f, format, t); err != nil {
		return path, fmt.Errorf("cannot write %q: %w", path, err)
	}
	return path, f.Close()
}

// EncodeTable writes 't' to 'w' in the given format. Every cell is written
// as text.
func EncodeTable(w io.Writer, format Format, t *Table) error {
	switch format {
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
		for i := range t.Rows {
			if err := cw.Write(t.fullRow(i)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	case JSONL:
		bw := bufio.NewWriter(w)
		for i := range t.Rows {
			row := t.fullRow(i)
			var obj jsonObjectWriter
			for j, c := range t.Columns {
				obj.Append(c, row[j])
			}
			data, err := obj.MarshalJSON()
			if err != nil {
				return err
			}
			bw.Write(data)
			bw.WriteByte('\n')
		}
		return bw.Flush()

	case Parquet:
		// a parquet group is keyed by name
		group := make(parquet.Group, len(t.Columns))
		for _, c := range t.Columns {
			if _, dup := group[c]; dup {
				return fmt.Errorf("duplicate column %q", c)
			}
			group[c] = parquet.String()
		}
		schema := parquet.NewSchema("report", group)
		// leaf columns of a group are sorted by name, not in table order
		leaves := make([]int, len(t.Columns))
		for j, c := range t.Columns {
			leaf, ok := schema.Lookup(c)
			if !ok {
				return fmt.Errorf("column %q not found in parquet schema", c)
			}
			leaves[j] = leaf.ColumnIndex
		}

		pw := parquet.NewWriter(w, schema)
		rows := make([]parquet.Row, 0, len(t.Rows))
		for i := range t.Rows {
			cells := t.fullRow(i)
			row := make(parquet.Row, len(cells))
			for j, v := range cells {
				row[leaves[j]] = parquet.ValueOf(v).Level(0, 0, leaves[j])
			}
			rows = append(rows, row)
		}
		if _, err := pw.WriteRows(rows); err != nil {
			return err
		}
		return pw.Close()
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}
