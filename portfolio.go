package holdings

import (
	"cmp"
	"iter"
	"slices"
)

// Batch is the normalized holdings of a single fund.
type Batch struct {
	Fund     string
	Holdings []Holding
}

// Portfolio is the concatenation of the holdings of all loaded funds.
//
// Holdings are kept in canonical order: by ascending fund name, and in
// extract order within a fund. That order does not depend on the order the
// batches were produced, so every result derived from a Portfolio is
// reproducible.
type Portfolio struct {
	holdings []Holding
	funds    []string // distinct, sorted
}

// Merge concatenates 'batches' in ascending fund name order.
func Merge(batches ...Batch) *Portfolio {
	sorted := slices.Clone(batches)
	slices.SortStableFunc(sorted, func(a, b Batch) int { return cmp.Compare(a.Fund, b.Fund) })

	n := 0
	for _, b := range sorted {
		n += len(b.Holdings)
	}
	p := &Portfolio{holdings: make([]Holding, 0, n)}
	for _, b := range sorted {
		p.holdings = append(p.holdings, b.Holdings...)
	}
	p.indexFunds()
	return p
}

// NewPortfolio groups loose holdings by fund, keeping their relative order
// within a fund, and merges them.
func NewPortfolio(holdings []Holding) *Portfolio {
	var batches []Batch
	index := make(map[string]int)
	for _, h := range holdings {
		i, ok := index[h.Fund]
		if !ok {
			i = len(batches)
			index[h.Fund] = i
			batches = append(batches, Batch{Fund: h.Fund})
		}
		batches[i].Holdings = append(batches[i].Holdings, h)
	}
	return Merge(batches...)
}

func (p *Portfolio) indexFunds() {
	p.funds = p.funds[:0]
	for _, h := range p.holdings {
		// holdings are grouped by fund, so checking the last one is enough
		if len(p.funds) == 0 || p.funds[len(p.funds)-1] != h.Fund {
			p.funds = append(p.funds, h.Fund)
		}
	}
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// IsEmpty reports whether the portfolio has no holdings.
func (p *Portfolio) IsEmpty() bool { return len(p.holdings) == 0 }

// At returns the i-th holding in canonical order.
func (p *Portfolio) At(i int) Holding { return p.holdings[i] }

// Holdings iterates over holdings in canonical order.
func (p *Portfolio) Holdings() iter.Seq[Holding] {
	return func(yield func(Holding) bool) {
		for _, h := range p.holdings {
			if !yield(h) {
				return
			}
		}
	}
}

// Funds returns the distinct fund names, sorted.
func (p *Portfolio) Funds() []string { return slices.Clone(p.funds) }

// HasFund reports whether 'fund' has at least one holding.
func (p *Portfolio) HasFund(fund string) bool {
	_, found := slices.BinarySearch(p.funds, fund)
	return found
}

// Filter returns the portfolio restricted to the given funds.
//
// An empty list is the identity. Funds absent from the portfolio are not an
// error, they simply match nothing (see MissingFunds). The result can be
// empty, which callers report as an empty result rather than a failure.
func (p *Portfolio) Filter(funds []string) *Portfolio {
	if len(funds) == 0 {
		return p
	}
	keep := make(map[string]bool, len(funds))
	for _, f := range funds {
		keep[f] = true
	}
	q := &Portfolio{}
	for _, h := range p.holdings {
		if keep[h.Fund] {
			q.holdings = append(q.holdings, h)
		}
	}
	q.indexFunds()
	return q
}

// MissingFunds returns the funds in 'funds' that have no holding in p, in
// the order they were given.
func (p *Portfolio) MissingFunds(funds []string) []string {
	var missing []string
	for _, f := range funds {
		if !p.HasFund(f) && !slices.Contains(missing, f) {
			missing = append(missing, f)
		}
	}
	return missing
}
