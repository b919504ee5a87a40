package holdings

import "github.com/shopspring/decimal"

// Quantity is a number of shares.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a Quantity from a float.
func Q(v float64) Quantity { return Quantity{value: decimal.NewFromFloat(v)} }

// ParseQuantity parses a share count like "1,234.5".
func ParseQuantity(s string) (Quantity, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) Float64() float64      { return q.value.InexactFloat64() }
func (q Quantity) String() string        { return q.value.String() }
