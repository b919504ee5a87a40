package holdings

import (
	"fmt"
	"strconv"
)

// Percent is a weight expressed in percentage points (11.28 means 11.28%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// Text returns the shortest decimal form that parses back to the same value.
func (p Percent) Text() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
