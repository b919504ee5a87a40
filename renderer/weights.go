package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

// CorrelationText summarizes the correlation report.
func CorrelationText(r *holdings.CorrelationReport) string {
	return fmt.Sprintf("Correlation of %d ETFs over %d assets", len(r.Funds), r.Assets)
}

// ExposureText summarizes the exposure report. The coverage is the total
// look-through weight of the listed assets.
func ExposureText(r *holdings.ExposureReport) string {
	return fmt.Sprintf("Exposure to %d assets through %d ETFs, covering %s", len(r.Rows), len(r.Allocation), r.Total)
}

// CorrelationMarkdown renders the correlation matrix, one row and one
// column per fund.
func CorrelationMarkdown(r *holdings.CorrelationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Weight Correlation")
	doc.PlainText(CorrelationText(r) + ", an asset not held counts as a zero weight.")

	right := make([]int, len(r.Funds))
	for i := range right {
		right[i] = i + 1
	}
	doc.Table(tableSet(r.Table(), right...))

	return doc.String()
}

// ExposureMarkdown renders the allocation, then the exposure of every asset.
func ExposureMarkdown(r *holdings.ExposureReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Weighted Exposure")
	doc.PlainText(ExposureText(r) + ".")

	doc.H2("Allocation")
	alloc := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"ETF", "Share"},
		Rows:      [][]string{},
	}
	for _, a := range r.Allocation {
		alloc.Rows = append(alloc.Rows, []string{a.Fund, holdings.Percent(a.Share * 100).String()})
	}
	doc.Table(alloc)

	doc.H2("Exposure")
	doc.Table(tableSet(r.Table(), 2))

	return doc.String()
}
