package holdings

import (
	"cmp"
	"runtime"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// Asset is the aggregate of every holding of one symbol.
//
// Assets are derived from a Portfolio on demand and have no identity of
// their own across calls.
type Asset struct {
	Symbol string
	// Name of the first holding of the symbol in canonical order.
	Name string
	// Funds holding the asset, sorted.
	Funds []string
	// Weights of the asset in each fund. When a fund lists the same symbol
	// twice the last row wins.
	Weights map[string]Percent
}

// FundCount returns the number of distinct funds holding the asset.
func (a Asset) FundCount() int { return len(a.Funds) }

// Weight returns the weight of the asset in 'fund', and whether the fund
// holds it at all.
func (a Asset) Weight(fund string) (Percent, bool) {
	w, ok := a.Weights[fund]
	return w, ok
}

// minPartitionSize keeps small portfolios on a single goroutine.
const minPartitionSize = 4096

// Workers returns the effective worker count for a requested one: any value
// below 1 means "all available hardware parallelism".
func Workers(n int) int {
	if n < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Aggregate groups the holdings of 'p' by symbol and returns the assets
// sorted by symbol.
//
// Holdings are partitioned by a hash of their symbol and each partition is
// aggregated independently on a pool of 'workers' goroutines. A partition
// scans its holdings in canonical order, so the result is exactly the one a
// sequential scan would produce.
func Aggregate(p *Portfolio, workers int) []Asset {
	workers = Workers(workers)
	parts := workers
	if n := p.Len() / minPartitionSize; n < parts {
		parts = max(n, 1)
	}

	// indices stay ascending within a partition
	partitions := make([][]int, parts)
	for i := range p.holdings {
		k := 0
		if parts > 1 {
			k = int(xxhash.Sum64String(p.holdings[i].Symbol) % uint64(parts))
		}
		partitions[k] = append(partitions[k], i)
	}

	results := make([][]Asset, parts)
	var g errgroup.Group
	g.SetLimit(workers)
	for k, idx := range partitions {
		g.Go(func() error {
			results[k] = aggregatePartition(p, idx)
			return nil
		})
	}
	_ = g.Wait() // partitions never fail

	var assets []Asset
	for _, r := range results {
		assets = append(assets, r...)
	}
	slices.SortFunc(assets, func(a, b Asset) int { return cmp.Compare(a.Symbol, b.Symbol) })
	log.Debug().Int("holdings", p.Len()).Int("assets", len(assets)).Int("partitions", parts).Msg("aggregated")
	return assets
}

func aggregatePartition(p *Portfolio, indices []int) []Asset {
	var assets []Asset
	bySymbol := make(map[string]int)
	for _, i := range indices {
		h := p.holdings[i]
		k, ok := bySymbol[h.Symbol]
		if !ok {
			k = len(assets)
			bySymbol[h.Symbol] = k
			assets = append(assets, Asset{
				Symbol:  h.Symbol,
				Name:    h.Name,
				Weights: make(map[string]Percent),
			})
		}
		a := &assets[k]
		if _, held := a.Weights[h.Fund]; !held {
			// canonical order is fund sorted, so Funds stays sorted
			a.Funds = append(a.Funds, h.Fund)
		}
		a.Weights[h.Fund] = h.Weight
	}
	return assets
}
