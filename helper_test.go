package holdings

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// extract builds a raw extract with the default schema columns. Each row is
// {No., Symbol, Name, % Weight}.
func extract(rows ...[4]string) *Table {
	t := NewTable(DefaultNumberColumn, DefaultSymbolColumn, DefaultNameColumn, DefaultWeightColumn)
	for _, r := range rows {
		t.Append(r[:]...)
	}
	return t
}

// mustNormalize normalizes a raw extract and fails the test on error.
func mustNormalize(t *testing.T, table *Table, fund string) Batch {
	t.Helper()
	hs, err := Normalize(table, fund, DefaultSchema())
	require.NoError(t, err)
	return Batch{Fund: fund, Holdings: hs}
}

// threeFunds returns IVW (3 assets), IWF (2 assets) and VTV (no AAPL).
func threeFunds(t *testing.T) *Portfolio {
	t.Helper()
	return Merge(
		mustNormalize(t, extract(
			[4]string{"1", "AAPL", "Apple Inc", "11.28%"},
			[4]string{"2", "NVDA", "NVIDIA Corp", "5.00%"},
			[4]string{"3", "GOOGL", "Alphabet Inc", "4.10%"},
		), "IVW"),
		mustNormalize(t, extract(
			[4]string{"1", "AAPL", "Apple", "5.66%"},
			[4]string{"2", "AMZN", "Amazon.com Inc", "4.00%"},
		), "IWF"),
		mustNormalize(t, extract(
			[4]string{"1", "JPM", "JPMorgan Chase", "3.10%"},
			[4]string{"2", "XOM", "Exxon Mobil", "2.20%"},
		), "VTV"),
	)
}

// compareFunds returns IVE, IVW and IWF where MSFT is only held by IVE.
func compareFunds(t *testing.T) *Portfolio {
	t.Helper()
	return Merge(
		mustNormalize(t, extract(
			[4]string{"1", "MSFT", "Microsoft Corp", "7.23%"},
			[4]string{"2", "AAPL", "Apple Inc", "0.00%"},
		), "IVE"),
		mustNormalize(t, extract(
			[4]string{"1", "AAPL", "Apple Inc", "11.28%"},
			[4]string{"2", "NVDA", "NVIDIA Corp", "5.00%"},
		), "IVW"),
		mustNormalize(t, extract(
			[4]string{"1", "AAPL", "Apple Inc", "5.66%"},
		), "IWF"),
	)
}

// largePortfolio generates 'funds' funds of 'rows' holdings each, over a
// symbol universe small enough for assets to overlap.
func largePortfolio(funds, rows int) *Portfolio {
	var batches []Batch
	for f := 0; f < funds; f++ {
		fund := fmt.Sprintf("F%02d", f)
		b := Batch{Fund: fund}
		for r := 0; r < rows; r++ {
			sym := fmt.Sprintf("S%05d", (r*7+f*13)%(rows*2))
			b.Holdings = append(b.Holdings, Holding{
				Fund:      fund,
				Symbol:    sym,
				Name:      fmt.Sprintf("%s issued by %s", sym, fund),
				Weight:    Percent(float64(r%100) / 10),
				RowNumber: r + 1,
			})
		}
		batches = append(batches, b)
	}
	return Merge(batches...)
}

func symbols[T any](rows []T, symbol func(T) string) []string {
	var s []string
	for _, r := range rows {
		s = append(s, symbol(r))
	}
	return s
}
