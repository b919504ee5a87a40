package holdings

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// this file contains functions to export a portfolio and import it back.
// Importing an export yields a portfolio identical to the original one, so
// every report computed on it is identical too.

// record is the exported form of a Holding.
type record struct {
	ETF    string   `parquet:"ETF" json:"ETF"`
	Symbol string   `parquet:"Symbol" json:"Symbol"`
	Name   string   `parquet:"Name" json:"Name"`
	Weight float64  `parquet:"Weight" json:"Weight"`
	Shares *float64 `parquet:"Shares,optional" json:"Shares,omitempty"`
	Number int64    `parquet:"Number" json:"Number"`
}

var recordColumns = []string{"ETF", "Symbol", "Name", "Weight", "Shares", "Number"}

func newRecord(h Holding) record {
	r := record{
		ETF:    h.Fund,
		Symbol: h.Symbol,
		Name:   h.Name,
		Weight: float64(h.Weight),
		Number: int64(h.RowNumber),
	}
	if h.Shares != nil {
		v := h.Shares.Float64()
		r.Shares = &v
	}
	return r
}

func (r record) holding() Holding {
	h := Holding{
		Fund:      r.ETF,
		Symbol:    r.Symbol,
		Name:      r.Name,
		Weight:    Percent(r.Weight),
		RowNumber: int(r.Number),
	}
	if r.Shares != nil {
		q := Q(*r.Shares)
		h.Shares = &q
	}
	return h
}

// ExportPortfolio writes 'p' to 'path' in the format given by its extension,
// Parquet when there is none. It returns the path actually written.
func ExportPortfolio(path string, p *Portfolio) (string, error) {
	path, format, err := ResolveFormat(path, Parquet)
	if err != nil {
		return path, err
	}
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodePortfolio(f, format, p); err != nil {
		return path, fmt.Errorf("cannot export to %q: %w", path, err)
	}
	return path, f.Close()
}

// EncodePortfolio writes the holdings of 'p', in canonical order, to 'w'.
func EncodePortfolio(w io.Writer, format Format, p *Portfolio) error {
	records := make([]record, 0, p.Len())
	for h := range p.Holdings() {
		records = append(records, newRecord(h))
	}

	switch format {
	case Parquet:
		return parquet.Write(w, records)
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(recordColumns); err != nil {
			return err
		}
		for _, r := range records {
			shares := ""
			if r.Shares != nil {
				shares = strconv.FormatFloat(*r.Shares, 'f', -1, 64)
			}
			err := cw.Write([]string{
				r.ETF,
				r.Symbol,
				r.Name,
				strconv.FormatFloat(r.Weight, 'f', -1, 64),
				shares,
				strconv.FormatInt(r.Number, 10),
			})
			if err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case JSONL:
		bw := bufio.NewWriter(w)
		for _, r := range records {
			var obj jsonObjectWriter
			obj.Append("ETF", r.ETF).
				Append("Symbol", r.Symbol).
				Append("Name", r.Name).
				Append("Weight", r.Weight).
				Optional("Shares", r.Shares).
				Append("Number", r.Number)
			data, err := obj.MarshalJSON()
			if err != nil {
				return err
			}
			bw.Write(data)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}

// ImportPortfolio reads a portfolio written by ExportPortfolio.
func ImportPortfolio(path string) (*Portfolio, error) {
	_, format, err := ResolveFormat(path, Parquet)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	var records []record
	switch format {
	case Parquet:
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		records, err = parquet.Read[record](f, info.Size())
		if err != nil {
			return nil, fmt.Errorf("cannot read parquet %q: %w", path, err)
		}
	case CSV:
		records, err = decodeCSVRecords(f)
	case JSONL:
		records, err = decodeJSONLRecords(f)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot import %q: %w", path, err)
	}

	hs := make([]Holding, 0, len(records))
	for _, r := range records {
		if err := ValidateFund(r.ETF); err != nil {
			return nil, err
		}
		hs = append(hs, r.holding())
	}
	return NewPortfolio(hs), nil
}

func decodeCSVRecords(r io.Reader) ([]record, error) {
	t, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]int)
	for _, c := range recordColumns {
		if idx[c] = t.Index(c); idx[c] < 0 && c != "Shares" {
			return nil, &MissingColumnError{Fund: "import", Column: c}
		}
	}

	records := make([]record, 0, t.Len())
	for i := range t.Rows {
		cell := func(c string) string {
			v, _ := t.Cell(i, idx[c])
			return v
		}
		r := record{ETF: cell("ETF"), Symbol: cell("Symbol"), Name: cell("Name")}
		if r.Weight, err = strconv.ParseFloat(strings.TrimSpace(cell("Weight")), 64); err != nil {
			return nil, &WeightParseError{Fund: r.ETF, RowNumber: i + 1, Value: cell("Weight")}
		}
		if r.Number, err = strconv.ParseInt(strings.TrimSpace(cell("Number")), 10, 64); err != nil {
			return nil, &RowNumberParseError{Fund: r.ETF, Row: i + 1, Value: cell("Number")}
		}
		if s := strings.TrimSpace(cell("Shares")); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: cannot parse shares %q: %w", i+1, s, err)
			}
			r.Shares = &v
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeJSONLRecords(r io.Reader) ([]record, error) {
	var records []record
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("cannot parse line %q: %w", string(line), err)
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}
