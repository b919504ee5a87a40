package holdings

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortOrder is the ordering applied to asset based reports.
type SortOrder int

const (
	// BySymbol sorts by ascending symbol.
	BySymbol SortOrder = iota
	// ByCount sorts by descending fund count, then ascending symbol.
	ByCount
)

// ParseSortOrder parses "symbol" or "count". The empty string is BySymbol.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "symbol":
		return BySymbol, nil
	case "count":
		return ByCount, nil
	}
	return BySymbol, fmt.Errorf("unknown sort order %q, expected \"symbol\" or \"count\"", s)
}

func (o SortOrder) String() string {
	switch o {
	case ByCount:
		return "count"
	default:
		return "symbol"
	}
}

func (o SortOrder) compare(a, b *Asset) int {
	if o == ByCount {
		if c := cmp.Compare(b.FundCount(), a.FundCount()); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Symbol, b.Symbol)
}

// SortAssets sorts 'assets' in place.
func SortAssets(assets []Asset, o SortOrder) {
	slices.SortFunc(assets, func(a, b Asset) int { return o.compare(&a, &b) })
}
