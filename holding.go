package holdings

import (
	"regexp"
	"strconv"
)

// Holding is one (fund, asset) relationship in canonical form.
//
// Holdings are created once by Normalize and never mutated.
type Holding struct {
	Fund      string
	Symbol    string
	Name      string
	Weight    Percent
	Shares    *Quantity // nil when the extract has no share count
	RowNumber int
}

// Synthesized reports whether the symbol was generated by Normalize because
// the extract had none.
func (h Holding) Synthesized() bool {
	return h.Symbol == SynthesizeSymbol(h.Fund, h.RowNumber)
}

// SynthesizeSymbol returns the placeholder symbol of an asset without one.
func SynthesizeSymbol(fund string, rowNumber int) string {
	return fund + "-" + strconv.Itoa(rowNumber)
}

var fundPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateFund checks that 'fund' can be used as a fund identifier.
func ValidateFund(fund string) error {
	if fund == "" {
		return &InvalidFundError{Fund: fund, Reason: "empty"}
	}
	if !fundPattern.MatchString(fund) {
		return &InvalidFundError{Fund: fund, Reason: "only letters, digits, '.', '_' and '-' are allowed"}
	}
	return nil
}
