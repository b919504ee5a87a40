package holdings

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn          = errors.New("missing column")
	ErrWeightParse            = errors.New("invalid weight")
	ErrRowNumberParse         = errors.New("invalid row number")
	ErrInvalidFund            = errors.New("invalid fund identifier")
	ErrMissingComparisonFunds = errors.New("missing comparison funds")
	ErrInvalidAllocation      = errors.New("invalid allocation")
	ErrUnsupportedFormat      = errors.New("unsupported file format")
)

// MissingColumnError reports a schema column absent from a fund extract.
type MissingColumnError struct {
	Fund   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("fund %q: missing column %q", e.Fund, e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// WeightParseError reports a weight that is not a number once the trailing
// '%' is stripped.
type WeightParseError struct {
	Fund      string
	RowNumber int
	Value     string
}

func (e *WeightParseError) Error() string {
	return fmt.Sprintf("fund %q row %d: cannot parse weight %q", e.Fund, e.RowNumber, e.Value)
}

func (e *WeightParseError) Unwrap() error { return ErrWeightParse }

// RowNumberParseError reports a row number cell that is not an integer.
// Row is the 1-based position of the data row in the extract.
type RowNumberParseError struct {
	Fund  string
	Row   int
	Value string
}

func (e *RowNumberParseError) Error() string {
	return fmt.Sprintf("fund %q row %d: cannot parse row number %q", e.Fund, e.Row, e.Value)
}

func (e *RowNumberParseError) Unwrap() error { return ErrRowNumberParse }

// InvalidFundError reports an empty, malformed or duplicated fund identifier.
type InvalidFundError struct {
	Fund   string
	Reason string
}

func (e *InvalidFundError) Error() string {
	return fmt.Sprintf("invalid fund identifier %q: %s", e.Fund, e.Reason)
}

func (e *InvalidFundError) Unwrap() error { return ErrInvalidFund }

// ParameterError is a local validation failure of an analysis function
// (missing compare list, invalid allocation). It names the function and
// the offending parameter so that the caller can re-invoke it correctly.
type ParameterError struct {
	Function  string
	Parameter string
	Reason    string
	err       error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s", e.Function, e.Parameter, e.Reason)
}

func (e *ParameterError) Unwrap() error { return e.err }
