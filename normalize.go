package holdings

import (
	"fmt"
	"math"
	"strings"

	"github.com/phuslu/log"
	"github.com/shopspring/decimal"
)

// Normalize turns the raw extract 't' of 'fund' into canonical holdings.
//
// Columns are located once using 'schema'. A missing Symbol, Name or Weight
// column is a MissingColumnError. A missing symbol (empty, null or "n/a")
// is replaced by "{fund}-{row number}", which requires the Number column.
// Weights like " 11.28 %" are parsed to 11.28, anything that is not a number
// once the trailing '%' is stripped is a WeightParseError.
//
// Normalize has no side effects: the same input always yields the same
// holdings.
func Normalize(t *Table, fund string, schema Schema) ([]Holding, error) {
	if err := ValidateFund(fund); err != nil {
		return nil, err
	}
	schema = schema.WithDefaults()
	cols, err := schema.resolve(t, fund)
	if err != nil {
		return nil, err
	}

	holdings := make([]Holding, 0, t.Len())
	synthesized := 0
	for i := range t.Rows {
		h := Holding{Fund: fund, RowNumber: i + 1}

		if cols.number >= 0 {
			if v, ok := t.Cell(i, cols.number); ok && strings.TrimSpace(v) != "" {
				n, err := parseRowNumber(v)
				if err != nil {
					return nil, &RowNumberParseError{Fund: fund, Row: i + 1, Value: v}
				}
				h.RowNumber = n
			}
		}

		symbol, ok := t.Cell(i, cols.symbol)
		symbol = strings.TrimSpace(symbol)
		if !ok || missingSymbol(symbol) {
			if cols.number < 0 {
				return nil, &MissingColumnError{Fund: fund, Column: schema.Number}
			}
			symbol = SynthesizeSymbol(fund, h.RowNumber)
		}
		h.Symbol = symbol

		name, _ := t.Cell(i, cols.name)
		h.Name = strings.TrimSpace(name)

		raw, _ := t.Cell(i, cols.weight)
		w, err := ParseWeight(raw)
		if err != nil {
			return nil, &WeightParseError{Fund: fund, RowNumber: h.RowNumber, Value: raw}
		}
		h.Weight = w

		if cols.shares >= 0 {
			if v, ok := t.Cell(i, cols.shares); ok && strings.TrimSpace(v) != "" {
				q, err := ParseQuantity(v)
				if err != nil {
					log.Warn().Str("fund", fund).Int("row", h.RowNumber).Str("shares", v).Msg("ignoring unparsable share count")
				} else {
					h.Shares = &q
				}
			}
		}

		if h.Synthesized() {
			synthesized++
		}
		holdings = append(holdings, h)
	}
	log.Debug().Str("fund", fund).Int("rows", len(holdings)).Int("synthesized", synthesized).Msg("normalized")
	return holdings, nil
}

// missingSymbol reports whether a trimmed symbol cell stands for no symbol.
func missingSymbol(s string) bool {
	return s == "" || strings.EqualFold(s, "n/a")
}

// ParseWeight parses a textual weight such as "11.28%", " 5.66 % " or "0.5".
func ParseWeight(s string) (Percent, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, "%")
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, fmt.Errorf("empty weight")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0, err
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("weight %q out of range", s)
	}
	return Percent(f), nil
}

// parseDecimal parses a number that may use ',' as thousands separator.
func parseDecimal(s string) (decimal.Decimal, error) {
	v := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return decimal.NewFromString(v)
}

// parseRowNumber parses an integral row number, "12" and "12.0" are valid.
func parseRowNumber(s string) (int, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if d.Cmp(decimal.NewFromInt(math.MaxInt)) > 0 || d.Cmp(decimal.NewFromInt(math.MinInt)) < 0 {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return int(d.IntPart()), nil
}
