package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/holdings"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(r *holdings.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.PlainText(fmt.Sprintf("Total ETFs: %d, total holdings: %d", len(r.Rows), r.Holdings))
	if r.Largest != nil && r.Smallest != nil {
		doc.BulletList(
			fmt.Sprintf("Largest: %s (%d assets)", md.Bold(r.Largest.Fund), r.Largest.AssetCount),
			fmt.Sprintf("Smallest: %s (%d assets)", md.Bold(r.Smallest.Fund), r.Smallest.AssetCount),
		)
	}

	doc.H2("ETFs")
	doc.Table(tableSet(r.Table(), 1))

	return doc.String()
}

func ListMarkdown(r *holdings.ListReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("ETFs")
	doc.PlainText(fmt.Sprintf("Found %d ETFs", len(r.Funds)))
	doc.Table(tableSet(r.Table()))

	return doc.String()
}
