package holdings

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
)

// Allocation is the share of one fund in a combination of funds, 0.25 for
// a quarter.
type Allocation struct {
	Fund  string
	Share float64
}

// EqualAllocation splits a combination evenly across 'funds'. Empty and
// duplicated funds are dropped.
func EqualAllocation(funds ...string) []Allocation {
	list := fundList(funds)
	alloc := make([]Allocation, len(list))
	for i, f := range list {
		alloc[i] = Allocation{Fund: f, Share: 1 / float64(len(list))}
	}
	return alloc
}

// shareTolerance is the accepted distance between the sum of the shares
// and 1.
const shareTolerance = 1e-6

// Exposure computes the look-through weight of every asset in a combination
// of funds: the sum, over the funds, of the fund's share times the weight
// of the asset in that fund. Rows are sorted by descending exposure, then
// by symbol.
//
// Shares must be non negative and sum to 1, every fund appearing once.
// Anything else is a ParameterError wrapping ErrInvalidAllocation. An empty
// allocation is an equal allocation across every fund of 'p', and an empty
// report when 'p' is empty. Funds absent from 'p' contribute nothing.
func Exposure(p *Portfolio, alloc []Allocation, opts Options) (*ExposureReport, error) {
	if len(alloc) == 0 {
		if p.IsEmpty() {
			return &ExposureReport{}, nil
		}
		alloc = EqualAllocation(p.Funds()...)
	}
	if err := validateAllocation(alloc); err != nil {
		return nil, err
	}

	funds := make([]string, len(alloc))
	shares := make(map[string]float64, len(alloc))
	for i, a := range alloc {
		funds[i] = a.Fund
		shares[a.Fund] = a.Share
	}

	r := &ExposureReport{Allocation: slices.Clone(alloc)}
	for _, a := range Aggregate(p.Filter(funds), opts.Workers) {
		var e float64
		for _, f := range a.Funds {
			e += shares[f] * float64(a.Weights[f])
		}
		r.Rows = append(r.Rows, ExposureRow{
			Symbol:   a.Symbol,
			Name:     a.Name,
			Exposure: Percent(e),
			Funds:    slices.Clone(a.Funds),
		})
		r.Total += Percent(e)
	}
	slices.SortStableFunc(r.Rows, func(a, b ExposureRow) int {
		if c := cmp.Compare(b.Exposure, a.Exposure); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return r, nil
}

func validateAllocation(alloc []Allocation) error {
	invalid := func(format string, args ...any) error {
		return &ParameterError{
			Function:  "exposure",
			Parameter: "allocation",
			Reason:    fmt.Sprintf(format, args...),
			err:       ErrInvalidAllocation,
		}
	}
	if len(alloc) == 0 {
		return invalid("at least one fund is required")
	}
	seen := make(map[string]bool, len(alloc))
	sum := 0.0
	for _, a := range alloc {
		if strings.TrimSpace(a.Fund) == "" {
			return invalid("empty fund")
		}
		if seen[a.Fund] {
			return invalid("fund %s appears twice", a.Fund)
		}
		seen[a.Fund] = true
		if a.Share < 0 || math.IsNaN(a.Share) || math.IsInf(a.Share, 0) {
			return invalid("invalid share %g for %s", a.Share, a.Fund)
		}
		sum += a.Share
	}
	if math.Abs(sum-1) > shareTolerance {
		return invalid("shares must sum to 1, got %g", sum)
	}
	return nil
}
