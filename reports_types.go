package holdings

import (
	"strconv"
	"strings"
)

// NotHeld is the text of a compare cell for an asset a fund does not hold.
// It differs from "0.00%", an asset held at a zero weight.
const NotHeld = "N/A"

// fundSeparator joins fund or symbol lists in a single text cell.
const fundSeparator = ", "

// AssetRow is one asset in the assets and mapping reports.
type AssetRow struct {
	Symbol    string
	Name      string
	FundCount int
	Funds     []string // sorted
}

// AssetsReport lists every asset with the funds holding it.
type AssetsReport struct {
	Sort  SortOrder
	Funds int // number of funds in the analyzed portfolio
	Rows  []AssetRow
}

// UniqueRow is an asset held by a single fund.
type UniqueRow struct {
	Symbol string
	Name   string
	Weight Percent
	Fund   string
}

// UniqueReport lists the assets held by exactly one fund.
type UniqueReport struct {
	Rows []UniqueRow
}

// OverlapRow is one (asset, fund) pair of an asset held by several funds.
type OverlapRow struct {
	Symbol    string
	Name      string
	FundCount int
	Weight    Percent
	Fund      string
}

// OverlapReport lists the assets held by more than one fund, one row per
// holding fund. Rows of one asset are adjacent.
type OverlapReport struct {
	Sort   SortOrder
	Assets int // number of distinct overlapping assets
	Rows   []OverlapRow
}

// Bucket counts the assets held by exactly FundCount funds.
type Bucket struct {
	FundCount int
	Assets    int
}

// MappingReport is the full asset to funds mapping, with the distribution
// of fund counts.
type MappingReport struct {
	Sort      SortOrder
	Funds     int
	Rows      []AssetRow
	Histogram []Bucket // ascending FundCount
}

// FundSummary describes the holdings of one fund.
type FundSummary struct {
	Fund       string
	AssetCount int
	Assets     []string // distinct symbols, sorted
}

// SummaryReport describes every fund of a portfolio.
type SummaryReport struct {
	Holdings int
	Rows     []FundSummary
	// Largest and Smallest are nil when there is no fund.
	Largest  *FundSummary
	Smallest *FundSummary
}

// WeightCell is the weight of an asset in one fund of a compare report.
type WeightCell struct {
	Weight Percent
	Held   bool
}

func (c WeightCell) String() string {
	if !c.Held {
		return NotHeld
	}
	return c.Weight.String()
}

// CompareRow holds one cell per compared fund, in the report's Funds order.
type CompareRow struct {
	Symbol  string
	Weights []WeightCell
}

// CompareReport compares the weights of assets across a fund subset.
type CompareReport struct {
	Funds []string
	Rows  []CompareRow
}

// CorrelationReport is the matrix of the correlations between the weights
// of a fund subset. Matrix[i][j] correlates Funds[i] and Funds[j].
type CorrelationReport struct {
	Funds  []string
	Assets int // number of assets the correlations are computed over
	Matrix [][]float64
}

// ExposureRow is the look-through weight of an asset in a combination of
// funds.
type ExposureRow struct {
	Symbol   string
	Name     string
	Exposure Percent
	Funds    []string // allocated funds holding the asset, sorted
}

// ExposureReport is the look-through composition of a combination of
// funds.
type ExposureReport struct {
	Allocation []Allocation
	Rows       []ExposureRow
	// Total is the sum of the exposures, the part of the combination
	// covered by the extracts.
	Total Percent
}

// ListReport lists the funds of a portfolio.
type ListReport struct {
	Funds []string
}

// Table returns the report as a canonical output table.
func (r *AssetsReport) Table() *Table { return assetTable(r.Rows) }

// Table returns the report as a canonical output table.
func (r *MappingReport) Table() *Table { return assetTable(r.Rows) }

func assetTable(rows []AssetRow) *Table {
	t := NewTable("Symbol", "Name", "ETF Count", "ETFs")
	for _, r := range rows {
		t.Append(r.Symbol, r.Name, strconv.Itoa(r.FundCount), strings.Join(r.Funds, fundSeparator))
	}
	return t
}

// Table returns the report as a canonical output table.
func (r *UniqueReport) Table() *Table {
	t := NewTable("Symbol", "Name", "Weight", "ETF")
	for _, u := range r.Rows {
		t.Append(u.Symbol, u.Name, u.Weight.Text(), u.Fund)
	}
	return t
}

// Table returns the report as a canonical output table.
func (r *OverlapReport) Table() *Table {
	t := NewTable("Symbol", "Name", "ETF Count", "Weight", "ETF")
	for _, o := range r.Rows {
		t.Append(o.Symbol, o.Name, strconv.Itoa(o.FundCount), o.Weight.Text(), o.Fund)
	}
	return t
}

// Table returns the report as a canonical output table.
func (r *SummaryReport) Table() *Table {
	t := NewTable("ETF", "Asset Count", "Assets")
	for _, s := range r.Rows {
		t.Append(s.Fund, strconv.Itoa(s.AssetCount), strings.Join(s.Assets, fundSeparator))
	}
	return t
}

// Table returns the report as a canonical output table.
func (r *CompareReport) Table() *Table {
	t := NewTable(append([]string{"Symbol"}, r.Funds...)...)
	for _, c := range r.Rows {
		cells := make([]string, 0, len(c.Weights)+1)
		cells = append(cells, c.Symbol)
		for _, w := range c.Weights {
			cells = append(cells, w.String())
		}
		t.Append(cells...)
	}
	return t
}

// Table returns the report as a canonical output table.
func (r *ListReport) Table() *Table {
	t := NewTable("ETF")
	for _, f := range r.Funds {
		t.Append(f)
	}
	return t
}

// Table returns the report as a canonical output table, coefficients with
// four decimals.
func (r *CorrelationReport) Table() *Table {
	t := NewTable(append([]string{"ETF"}, r.Funds...)...)
	for i, f := range r.Funds {
		cells := make([]string, 0, len(r.Funds)+1)
		cells = append(cells, f)
		for _, c := range r.Matrix[i] {
			cells = append(cells, strconv.FormatFloat(c, 'f', 4, 64))
		}
		t.Append(cells...)
	}
	return t
}

// Table returns the report as a canonical output table, exposures in
// percentage points with four decimals.
func (r *ExposureReport) Table() *Table {
	t := NewTable("Symbol", "Name", "Exposure", "ETFs")
	for _, e := range r.Rows {
		t.Append(e.Symbol, e.Name, strconv.FormatFloat(float64(e.Exposure), 'f', 4, 64), strings.Join(e.Funds, fundSeparator))
	}
	return t
}
