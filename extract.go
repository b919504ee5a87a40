package holdings

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the readers of raw fund extracts. They only build a
// Table, interpreting the cells is the job of Normalize.

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV reads a delimited text extract. The first record is the header.
// Records may have fewer or more cells than the header: missing cells are
// null, extra cells are kept but unaddressable.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV extract: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV extract: no header")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	t := NewTable()
	for _, h := range header {
		t.Columns = append(t.Columns, strings.TrimSpace(h))
	}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV record: %w", err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			// blank line with a single empty field
			continue
		}
		t.Append(rec...)
	}
	return t, nil
}

// ReadJSON reads a JSON extract. 'rowsPath' is a JSONPath expression
// selecting the array of rows, "$" (or "") meaning the whole document.
//
// Rows are either objects, in which case the columns are the union of their
// keys sorted alphabetically, or arrays, in which case the first one is the
// header. Numbers keep their literal text, null is a null cell.
func ReadJSON(r io.Reader, rowsPath string) (*Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot decode JSON extract: %w", err)
	}

	if rowsPath != "" && rowsPath != "$" {
		v, err := jsonpath.Get(rowsPath, doc)
		if err != nil {
			return nil, fmt.Errorf("cannot select rows with %q: %w", rowsPath, err)
		}
		doc = v
	}
	rows, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("rows selected by %q are not an array", rowsPath)
	}
	if len(rows) == 0 {
		return NewTable(), nil
	}

	if _, ok := rows[0].([]any); ok {
		return jsonArrayTable(rows)
	}
	return jsonObjectTable(rows)
}

func jsonObjectTable(rows []any) (*Table, error) {
	var keys []string
	objs := make([]map[string]any, len(rows))
	for i, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not an object", i+1)
		}
		objs[i] = obj
		for k := range obj {
			if !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
	}
	slices.Sort(keys)

	t := NewTable(keys...)
	for i, obj := range objs {
		cells := make([]string, len(keys))
		for j, k := range keys {
			v, present := obj[k]
			if !present || v == nil {
				t.setNull(i, j)
				continue
			}
			cells[j] = jsonText(v)
		}
		t.Append(cells...)
	}
	return t, nil
}

func jsonArrayTable(rows []any) (*Table, error) {
	t := NewTable()
	for i, row := range rows {
		arr, ok := row.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not an array", i+1)
		}
		if i == 0 {
			for _, h := range arr {
				t.Columns = append(t.Columns, strings.TrimSpace(jsonText(h)))
			}
			continue
		}
		cells := make([]string, len(arr))
		for j, v := range arr {
			if v == nil {
				t.setNull(i-1, j)
				continue
			}
			cells[j] = jsonText(v)
		}
		t.Append(cells...)
	}
	return t, nil
}

// jsonText renders a decoded JSON value as a cell.
func jsonText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	default:
		data, _ := json.Marshal(x)
		return string(data)
	}
}
