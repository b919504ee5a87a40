package holdings

import "slices"

// Summary describes each fund of 'p': its number of distinct assets and
// their symbols. Largest and smallest are computed over the funds of 'p',
// so over the filtered set when 'p' is a filtered portfolio. Ties go to the
// alphabetically first fund.
func Summary(p *Portfolio) *SummaryReport {
	r := &SummaryReport{Holdings: p.Len()}
	var current *FundSummary
	seen := make(map[string]bool)
	for h := range p.Holdings() {
		if current == nil || current.Fund != h.Fund {
			r.Rows = append(r.Rows, FundSummary{Fund: h.Fund})
			current = &r.Rows[len(r.Rows)-1]
			clear(seen)
		}
		if !seen[h.Symbol] {
			seen[h.Symbol] = true
			current.Assets = append(current.Assets, h.Symbol)
		}
	}

	for i := range r.Rows {
		s := &r.Rows[i]
		slices.Sort(s.Assets)
		s.AssetCount = len(s.Assets)
		if r.Largest == nil || s.AssetCount > r.Largest.AssetCount {
			r.Largest = s
		}
		if r.Smallest == nil || s.AssetCount < r.Smallest.AssetCount {
			r.Smallest = s
		}
	}
	return r
}

// List returns the distinct funds of 'p', sorted.
func List(p *Portfolio) *ListReport {
	return &ListReport{Funds: p.Funds()}
}
