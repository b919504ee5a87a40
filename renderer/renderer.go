// Package renderer renders the analysis reports: a short plain text summary
// printed before every report, and a markdown document for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/holdings"
)

// AssetsText summarizes the assets report.
func AssetsText(r *holdings.AssetsReport) string {
	return fmt.Sprintf("Found %d total assets across %d ETFs", len(r.Rows), r.Funds)
}

// UniqueText summarizes the unique assets report.
func UniqueText(r *holdings.UniqueReport) string {
	return fmt.Sprintf("Found %d unique assets (appear in only one ETF)", len(r.Rows))
}

// OverlapText summarizes the overlap report. It counts assets, not rows.
func OverlapText(r *holdings.OverlapReport) string {
	return fmt.Sprintf("Found %d overlapping assets (appear in multiple ETFs)", r.Assets)
}

// MappingText summarizes the mapping report with its fund count
// distribution, one line per bucket.
func MappingText(r *holdings.MappingReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d assets across %d ETFs\n", len(r.Rows), r.Funds)
	b.WriteString("Distribution by ETF count:")
	for _, h := range r.Histogram {
		fmt.Fprintf(&b, "\n  %d ETF(s): %d assets", h.FundCount, h.Assets)
	}
	return b.String()
}

// SummaryText summarizes the portfolio summary report. Largest and smallest
// funds are omitted for an empty portfolio.
func SummaryText(r *holdings.SummaryReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total ETFs: %d\n", len(r.Rows))
	fmt.Fprintf(&b, "Total holdings: %d", r.Holdings)
	if r.Largest != nil {
		fmt.Fprintf(&b, "\nLargest: %s (%d assets)", r.Largest.Fund, r.Largest.AssetCount)
	}
	if r.Smallest != nil {
		fmt.Fprintf(&b, "\nSmallest: %s (%d assets)", r.Smallest.Fund, r.Smallest.AssetCount)
	}
	return b.String()
}

// ListText lists the funds, one per line after the count.
func ListText(r *holdings.ListReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d ETFs", len(r.Funds))
	for _, f := range r.Funds {
		b.WriteString("\n")
		b.WriteString(f)
	}
	return b.String()
}

// CompareText summarizes the compare report.
func CompareText(r *holdings.CompareReport) string {
	return fmt.Sprintf("Comparing %d assets across %d ETFs", len(r.Rows), len(r.Funds))
}
