package holdings

import "strings"

// Compare compares the weights of every asset held by at least one of
// 'funds'. Columns follow the order of 'funds' (duplicates removed), rows
// are sorted by symbol. A fund absent from 'p' yields a column of NotHeld
// cells.
//
// Compare is the only report that needs an explicit fund list: an empty one
// is a ParameterError wrapping ErrMissingComparisonFunds.
func Compare(p *Portfolio, funds []string, opts Options) (*CompareReport, error) {
	cols := fundList(funds)
	if len(cols) == 0 {
		return nil, &ParameterError{
			Function:  "compare",
			Parameter: "funds",
			Reason:    "at least one fund is required",
			err:       ErrMissingComparisonFunds,
		}
	}

	r := &CompareReport{Funds: cols}
	for _, a := range Aggregate(p.Filter(cols), opts.Workers) {
		row := CompareRow{Symbol: a.Symbol, Weights: make([]WeightCell, len(cols))}
		for i, f := range cols {
			w, held := a.Weight(f)
			row.Weights[i] = WeightCell{Weight: w, Held: held}
		}
		r.Rows = append(r.Rows, row)
	}
	return r, nil
}

// fundList trims 'funds' and drops empty and duplicated entries, keeping the
// first occurrence.
func fundList(funds []string) []string {
	var list []string
	seen := make(map[string]bool)
	for _, f := range funds {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		list = append(list, f)
	}
	return list
}
