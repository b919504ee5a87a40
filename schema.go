package holdings

// Default column names of a holdings extract.
const (
	DefaultSymbolColumn = "Symbol"
	DefaultNameColumn   = "Name"
	DefaultWeightColumn = "% Weight"
	DefaultSharesColumn = "Shares"
	DefaultNumberColumn = "No."
)

// Schema names the columns of a raw extract that map to the canonical
// fields of a Holding. Empty names stand for the defaults.
type Schema struct {
	Symbol string
	Name   string
	Weight string
	Shares string
	Number string
}

// DefaultSchema returns the schema with every default column name.
func DefaultSchema() Schema {
	return Schema{}.WithDefaults()
}

// WithDefaults returns a copy of s where empty column names are replaced by
// their default.
func (s Schema) WithDefaults() Schema {
	or := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Schema{
		Symbol: or(s.Symbol, DefaultSymbolColumn),
		Name:   or(s.Name, DefaultNameColumn),
		Weight: or(s.Weight, DefaultWeightColumn),
		Shares: or(s.Shares, DefaultSharesColumn),
		Number: or(s.Number, DefaultNumberColumn),
	}
}

// columns holds the positions of the schema columns in a given table, -1
// when an optional column is absent.
type columns struct {
	symbol, name, weight, shares, number int
}

// resolve locates the schema columns in 't'. Symbol, Name and Weight are
// required, Shares and Number are optional.
func (s Schema) resolve(t *Table, fund string) (columns, error) {
	c := columns{
		symbol: t.Index(s.Symbol),
		name:   t.Index(s.Name),
		weight: t.Index(s.Weight),
		shares: t.Index(s.Shares),
		number: t.Index(s.Number),
	}
	for _, req := range []struct {
		pos  int
		name string
	}{
		{c.symbol, s.Symbol},
		{c.name, s.Name},
		{c.weight, s.Weight},
	} {
		if req.pos < 0 {
			return c, &MissingColumnError{Fund: fund, Column: req.name}
		}
	}
	return c, nil
}
