package holdings

import (
	"slices"
)

// Options configures the asset based reports.
type Options struct {
	Sort    SortOrder
	Workers int // see Workers
}

// Assets lists every asset of 'p' with the funds holding it.
func Assets(p *Portfolio, opts Options) *AssetsReport {
	assets := Aggregate(p, opts.Workers)
	SortAssets(assets, opts.Sort)
	return &AssetsReport{
		Sort:  opts.Sort,
		Funds: len(p.funds),
		Rows:  assetRows(assets),
	}
}

// Unique lists the assets held by exactly one fund, sorted by symbol.
func Unique(p *Portfolio, opts Options) *UniqueReport {
	r := &UniqueReport{}
	for _, a := range Aggregate(p, opts.Workers) {
		if a.FundCount() != 1 {
			continue
		}
		fund := a.Funds[0]
		r.Rows = append(r.Rows, UniqueRow{
			Symbol: a.Symbol,
			Name:   a.Name,
			Weight: a.Weights[fund],
			Fund:   fund,
		})
	}
	return r
}

// Overlap lists the assets held by more than one fund. Each asset yields
// one row per holding fund, in fund order, with that fund's weight. Rows of
// one asset stay adjacent whatever the sort order.
func Overlap(p *Portfolio, opts Options) *OverlapReport {
	assets := slices.DeleteFunc(Aggregate(p, opts.Workers), func(a Asset) bool {
		return a.FundCount() < 2
	})
	SortAssets(assets, opts.Sort)

	r := &OverlapReport{Sort: opts.Sort, Assets: len(assets)}
	for _, a := range assets {
		for _, fund := range a.Funds {
			r.Rows = append(r.Rows, OverlapRow{
				Symbol:    a.Symbol,
				Name:      a.Name,
				FundCount: a.FundCount(),
				Weight:    a.Weights[fund],
				Fund:      fund,
			})
		}
	}
	return r
}

// Mapping is the full asset to funds mapping plus the number of assets per
// fund count.
func Mapping(p *Portfolio, opts Options) *MappingReport {
	assets := Aggregate(p, opts.Workers)
	SortAssets(assets, opts.Sort)

	counts := make(map[int]int)
	for _, a := range assets {
		counts[a.FundCount()]++
	}
	r := &MappingReport{
		Sort:  opts.Sort,
		Funds: len(p.funds),
		Rows:  assetRows(assets),
	}
	for k, n := range counts {
		r.Histogram = append(r.Histogram, Bucket{FundCount: k, Assets: n})
	}
	slices.SortFunc(r.Histogram, func(a, b Bucket) int { return a.FundCount - b.FundCount })
	return r
}

func assetRows(assets []Asset) []AssetRow {
	rows := make([]AssetRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, AssetRow{
			Symbol:    a.Symbol,
			Name:      a.Name,
			FundCount: a.FundCount(),
			Funds:     slices.Clone(a.Funds),
		})
	}
	return rows
}
