package holdings

import (
	"math"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

// Correlation computes the Pearson correlation between the weights of every
// pair of 'funds', over the assets held by at least one of them. An asset a
// fund does not hold counts as a zero weight. An empty list stands for
// every fund of 'p'.
//
// Pairs are computed on a pool of opts.Workers goroutines. A fund without
// variance (it holds nothing, or every asset at the same weight) has a
// correlation of 0 with the other funds, and 1 with itself.
func Correlation(p *Portfolio, funds []string, opts Options) *CorrelationReport {
	cols := fundList(funds)
	if len(cols) == 0 {
		cols = p.Funds()
	}
	assets := Aggregate(p.Filter(cols), opts.Workers)

	vectors := make([][]float64, len(cols))
	for i, f := range cols {
		v := make([]float64, len(assets))
		for k, a := range assets {
			w, _ := a.Weight(f)
			v[k] = float64(w)
		}
		vectors[i] = v
	}

	n := len(cols)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}

	// every task writes its own pair of cells
	var g errgroup.Group
	g.SetLimit(Workers(opts.Workers))
	for i := range n {
		for j := i + 1; j < n; j++ {
			g.Go(func() error {
				c := pearson(vectors[i], vectors[j])
				matrix[i][j], matrix[j][i] = c, c
				return nil
			})
		}
	}
	_ = g.Wait()
	log.Debug().Int("funds", n).Int("assets", len(assets)).Msg("correlated")

	return &CorrelationReport{Funds: cols, Assets: len(assets), Matrix: matrix}
}

// pearson returns the Pearson correlation coefficient of x and y, 0 when
// it is undefined.
func pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	n := float64(len(x))
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var num, varX, varY float64
	for i := range x {
		dx, dy := x[i]-meanX, y[i]-meanY
		num += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return num / math.Sqrt(varX*varY)
}
